package services

import (
	"context"
	"fmt"
	"ifcfg-agent/internal/domain/constants"
	"ifcfg-agent/internal/domain/errors"
	"ifcfg-agent/internal/domain/interfaces"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/sirupsen/logrus"
)

const backupTimestampFormat = "20060102_150405"

// BackupService는 기존 ifcfg 파일 백업을 관리하는 서비스입니다
type BackupService struct {
	fileSystem interfaces.FileSystem
	clock      interfaces.Clock
	logger     *logrus.Logger
	backupDir  string
}

// NewBackupService는 새로운 BackupService를 생성합니다
func NewBackupService(
	fs interfaces.FileSystem,
	clock interfaces.Clock,
	logger *logrus.Logger,
	backupDir string,
) interfaces.BackupService {
	return &BackupService{
		fileSystem: fs,
		clock:      clock,
		logger:     logger,
		backupDir:  backupDir,
	}
}

// CreateBackup은 현재 ifcfg 파일의 백업을 생성합니다. 파일이 없으면 아무것도 하지 않습니다
func (s *BackupService) CreateBackup(ctx context.Context, interfaceName string, configPath string) error {
	if !s.fileSystem.Exists(configPath) {
		s.logger.WithFields(logrus.Fields{
			"interface": interfaceName,
			"path":      configPath,
		}).Debug("백업할 설정 파일이 없음")
		return nil
	}

	if err := s.fileSystem.MkdirAll(s.backupDir, 0755); err != nil {
		return errors.NewSystemError("백업 디렉토리 생성 실패", err)
	}

	content, err := s.fileSystem.ReadFile(configPath)
	if err != nil {
		return errors.NewSystemError("설정 파일 읽기 실패", err)
	}

	// 예: eth6.203_20250108_150405.bak
	backupFileName := fmt.Sprintf("%s_%s.bak", interfaceName, s.clock.Now().Format(backupTimestampFormat))
	backupPath := filepath.Join(s.backupDir, backupFileName)

	if err := s.fileSystem.WriteFile(backupPath, content, constants.ConfigFilePermission); err != nil {
		return errors.NewSystemError("백업 파일 저장 실패", err)
	}

	s.logger.WithFields(logrus.Fields{
		"interface":   interfaceName,
		"backup_path": backupPath,
	}).Info("설정 백업 생성 완료")

	return nil
}

// RestoreLatestBackup은 가장 최근 백업 내용을 configPath에 다시 씁니다
func (s *BackupService) RestoreLatestBackup(ctx context.Context, interfaceName string, configPath string) error {
	backupFiles, err := s.findBackupFiles(interfaceName)
	if err != nil {
		return err
	}

	if len(backupFiles) == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("인터페이스 %s의 백업 파일을 찾을 수 없음", interfaceName))
	}

	// 파일명 정렬이 곧 시간순
	latestBackup := filepath.Join(s.backupDir, backupFiles[len(backupFiles)-1])

	content, err := s.fileSystem.ReadFile(latestBackup)
	if err != nil {
		return errors.NewSystemError("백업 파일 읽기 실패", err)
	}

	if err := s.fileSystem.WriteFile(configPath, content, constants.ConfigFilePermission); err != nil {
		return errors.NewSystemError("백업 복원 실패", err)
	}

	s.logger.WithFields(logrus.Fields{
		"interface":   interfaceName,
		"backup_file": latestBackup,
		"config_path": configPath,
	}).Info("백업 복원 완료")

	return nil
}

// HasBackup은 백업이 존재하는지 확인합니다
func (s *BackupService) HasBackup(ctx context.Context, interfaceName string) bool {
	backupFiles, err := s.findBackupFiles(interfaceName)
	if err != nil {
		s.logger.WithError(err).Error("백업 파일 검색 실패")
		return false
	}

	return len(backupFiles) > 0
}

// findBackupFiles는 특정 인터페이스의 백업 파일들을 찾아 정렬된 목록을 반환합니다.
// eth6과 eth6.203처럼 접두사가 겹치는 이름을 구분하기 위해 전체 패턴으로 비교합니다.
func (s *BackupService) findBackupFiles(interfaceName string) ([]string, error) {
	if !s.fileSystem.Exists(s.backupDir) {
		return []string{}, nil
	}

	files, err := s.fileSystem.ListFiles(s.backupDir)
	if err != nil {
		return nil, errors.NewSystemError("백업 디렉토리 읽기 실패", err)
	}

	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(interfaceName) + `_[0-9]{8}_[0-9]{6}\.bak$`)
	var backupFiles []string
	for _, file := range files {
		if pattern.MatchString(file) {
			backupFiles = append(backupFiles, file)
		}
	}

	sort.Strings(backupFiles)

	return backupFiles, nil
}
