package files

import (
	"crypto/rand"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/scalaxyz/hausnation-backend/models"
)

var dataPath, _ = filepath.Abs("./data")

const (
	artistsFileName  = "artists.json"
	releasesFileName = "releases.json"
	adminFileName    = "admin.json"
)

// SetDataPath points the store at a different data directory. Used by tests.
func SetDataPath(path string) {
	dataPath = path
}

// InitDataFiles creates the data directory and initializes the three backing
// files with empty collections when they do not exist yet.
func InitDataFiles() error {
	err := os.MkdirAll(dataPath, os.ModePerm)
	if err != nil {
		return errors.New("failed to create data directory. error: " + err.Error())
	}

	defaults := map[string]any{
		artistsFileName:  []models.Artist{},
		releasesFileName: []models.Release{},
		adminFileName:    models.AdminCredential{},
	}

	for name, empty := range defaults {
		path := filepath.Join(dataPath, name)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			err = writeFileAtomic(path, empty)
			if err != nil {
				return errors.New("failed to initialize " + name + ". error: " + err.Error())
			}
		}
	}

	return nil
}

// readFile decodes one backing file into dst. A missing file is an error
// here, InitDataFiles is expected to have run first.
func readFile(name string, dst any) error {
	data, err := os.ReadFile(filepath.Join(dataPath, name))
	if err != nil {
		return errors.New("failed to read " + name + ". error: " + err.Error())
	}

	err = json.Unmarshal(data, dst)
	if err != nil {
		return errors.New("failed to parse " + name + ". error: " + err.Error())
	}

	return nil
}

// writeFileAtomic replaces one backing file through a temp file and rename,
// so a crash mid-write never leaves a truncated collection behind.
func writeFileAtomic(path string, src any) error {
	data, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	err = os.WriteFile(tmpPath, data, 0644)
	if err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}

func ReadArtists() ([]models.Artist, error) {
	artists := []models.Artist{}
	err := readFile(artistsFileName, &artists)
	return artists, err
}

func WriteArtists(artists []models.Artist) error {
	return writeFileAtomic(filepath.Join(dataPath, artistsFileName), artists)
}

func ReadReleases() ([]models.Release, error) {
	releases := []models.Release{}
	err := readFile(releasesFileName, &releases)
	return releases, err
}

func WriteReleases(releases []models.Release) error {
	return writeFileAtomic(filepath.Join(dataPath, releasesFileName), releases)
}

func ReadAdmin() (models.AdminCredential, error) {
	admin := models.AdminCredential{}
	err := readFile(adminFileName, &admin)
	return admin, err
}

func WriteAdmin(admin models.AdminCredential) error {
	return writeFileAtomic(filepath.Join(dataPath, adminFileName), admin)
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateID builds an opaque record id from the current time in base36 plus
// a random suffix. Uniqueness is probabilistic, collisions are not checked.
func GenerateID() string {
	id := strconv.FormatInt(time.Now().UnixMilli(), 36)

	for i := 0; i < 8; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(idAlphabet))))
		if err != nil {
			// fall back to a time-derived index, rand failures are not fatal here
			id += string(idAlphabet[time.Now().UnixNano()%int64(len(idAlphabet))])
			continue
		}
		id += string(idAlphabet[n.Int64()])
	}

	return id
}
