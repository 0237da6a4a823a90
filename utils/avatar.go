package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nullrocks/identicon"
)

// GenerateAvatar renders a deterministic identicon for the given name and
// stores it in dir. Returns the public /uploads path of the written file.
func GenerateAvatar(name, dir string) (string, error) {
	generator, err := identicon.New("pulse", 7, 4)
	if err != nil {
		return "", err
	}

	icon, err := generator.Draw(name)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	// Names come straight from registration input; strip any path elements
	// so the file cannot land outside dir.
	fileName := fmt.Sprintf("%s_%d.png", filepath.Base(name), time.Now().UnixMilli())
	file, err := os.Create(filepath.Join(dir, fileName))
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := icon.Png(200, file); err != nil {
		return "", err
	}

	return "/uploads/" + fileName, nil
}
