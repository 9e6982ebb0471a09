package files

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"
)

// BackupDataFiles copies the three backing files into a timestamped folder
// under data/backups. Missing files are skipped, the store may not have
// every collection yet.
func BackupDataFiles() (string, error) {
	backupDir := filepath.Join(dataPath, "backups", time.Now().Format("2006-01-02_150405"))

	err := os.MkdirAll(backupDir, os.ModePerm)
	if err != nil {
		return "", errors.New("failed to create backup directory. error: " + err.Error())
	}

	for _, name := range []string{artistsFileName, releasesFileName, adminFileName} {
		err = copyFile(filepath.Join(dataPath, name), filepath.Join(backupDir, name))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", errors.New("failed to back up " + name + ". error: " + err.Error())
		}
	}

	return backupDir, nil
}

func copyFile(src string, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
