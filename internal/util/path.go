package util

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	projectRootDir     string
	projectRootDirOnce sync.Once
)

// GetProjectRootDir returns the path as string to the project_root for **scripts** and **tests**.
// It walks up from the working directory until it finds the directory holding go.mod.
// You may override it by setting the PROJECT_ROOT_DIR env var.
func GetProjectRootDir() string {
	projectRootDirOnce.Do(func() {
		if val, ok := os.LookupEnv("PROJECT_ROOT_DIR"); ok {
			projectRootDir = val
			return
		}

		dir, err := os.Getwd()
		if err != nil {
			log.Panic().Err(err).Msg("Failed to get working directory")
		}

		for {
			if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
				projectRootDir = dir
				return
			}

			parent := filepath.Dir(dir)
			if parent == dir {
				projectRootDir = "/app"
				return
			}
			dir = parent
		}
	})

	return projectRootDir
}
