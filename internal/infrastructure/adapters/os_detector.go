package adapters

import (
	"bufio"
	"fmt"
	"ifcfg-agent/internal/domain/constants"
	"ifcfg-agent/internal/domain/errors"
	"ifcfg-agent/internal/domain/interfaces"
	"path/filepath"
	"strings"
)

// RealOSDetector is an OSDetector implementation that reads os-release
type RealOSDetector struct {
	fileSystem interfaces.FileSystem
	hostRoot   string
}

// NewRealOSDetector creates a new RealOSDetector. hostRoot is prepended to
// /etc/os-release so the agent can run inside a container with the host mounted.
func NewRealOSDetector(fs interfaces.FileSystem, hostRoot string) interfaces.OSDetector {
	return &RealOSDetector{
		fileSystem: fs,
		hostRoot:   hostRoot,
	}
}

// DetectOS returns the current operating system family
func (d *RealOSDetector) DetectOS() (interfaces.OSFamily, error) {
	releaseInfo, err := d.parseOSRelease()
	if err != nil {
		return "", errors.NewSystemError("OS detection failed: cannot read os-release file", err)
	}

	id, ok := releaseInfo["ID"]
	if !ok {
		return "", errors.NewSystemError("OS detection failed: no ID field in os-release file", nil)
	}
	idLike := releaseInfo["ID_LIKE"]

	candidates := append([]string{id}, strings.Fields(idLike)...)
	for _, c := range candidates {
		switch {
		case c == "rhel" || c == "centos" || c == "rocky" || c == "almalinux" || c == "ol" || c == "fedora":
			return interfaces.OSFamilyRedHat, nil
		case c == "sles" || c == "suse" || strings.HasPrefix(c, "opensuse"):
			return interfaces.OSFamilySuse, nil
		case c == "debian" || c == "ubuntu":
			return interfaces.OSFamilyDebian, nil
		}
	}

	return "", errors.NewSystemError(fmt.Sprintf("unsupported OS type. ID: '%s', ID_LIKE: '%s'", id, idLike), nil)
}

// parseOSRelease parses the os-release file and returns it as a map.
func (d *RealOSDetector) parseOSRelease() (map[string]string, error) {
	content, err := d.fileSystem.ReadFile(filepath.Join(d.hostRoot, constants.OSReleaseFile))
	if err != nil {
		return nil, err
	}

	releaseInfo := make(map[string]string)
	scanner := bufio.NewScanner(strings.NewReader(string(content)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if key, value, found := strings.Cut(line, "="); found {
			releaseInfo[strings.TrimSpace(key)] = strings.Trim(strings.TrimSpace(value), "\"'")
		}
	}

	return releaseInfo, scanner.Err()
}
