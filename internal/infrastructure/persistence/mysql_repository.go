package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"ifcfg-agent/internal/domain/entities"
	"ifcfg-agent/internal/domain/errors"
	"ifcfg-agent/internal/domain/interfaces"

	_ "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
)

// MySQLRepository는 MySQL 기반의 DeclarationRepository 구현체입니다.
// params 컬럼은 선언 파라미터의 JSON 객체입니다.
type MySQLRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

// NewMySQLRepository는 새로운 MySQLRepository를 생성합니다
func NewMySQLRepository(db *sql.DB, logger *logrus.Logger) interfaces.DeclarationRepository {
	return &MySQLRepository{
		db:     db,
		logger: logger,
	}
}

// List는 삭제되지 않은 모든 인터페이스 선언을 제목 순으로 조회합니다
func (r *MySQLRepository) List(ctx context.Context) ([]entities.Declaration, error) {
	query := `
		SELECT title, params
		FROM interface_declaration
		WHERE deleted_at IS NULL
		ORDER BY title
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.NewSystemError("데이터베이스 조회 실패", err)
	}
	defer rows.Close()

	var declarations []entities.Declaration

	for rows.Next() {
		var title string
		var raw []byte

		if err := rows.Scan(&title, &raw); err != nil {
			r.logger.WithError(err).Error("행 스캔 실패")
			continue
		}

		decl, err := decodeDeclaration(title, raw)
		if err != nil {
			// 한 행의 손상이 나머지 선언 적용을 막지 않음
			r.logger.WithFields(logrus.Fields{
				"interface": title,
				"error":     err,
			}).Error("선언 파라미터 디코딩 실패")
			continue
		}
		declarations = append(declarations, decl)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.NewSystemError("결과 처리 중 오류", err)
	}

	return declarations, nil
}

// decodeDeclaration은 JSON params 컬럼을 선언으로 변환합니다
func decodeDeclaration(title string, raw []byte) (entities.Declaration, error) {
	params := map[string]interface{}{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &params); err != nil {
			return entities.Declaration{}, errors.NewValidationError(
				fmt.Sprintf("params가 JSON 객체가 아님: %s", title), err)
		}
	}
	return entities.Declaration{Title: title, Params: params}, nil
}
