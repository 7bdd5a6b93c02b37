package drawconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/catdraw/cmds"
	"github.com/reusee/catdraw/configs"
	"github.com/reusee/catdraw/logs"
	"github.com/reusee/catdraw/modes"
)

//go:embed schema.cue
var schema string

// Schema is the embedded config schema
func Schema() string {
	return schema
}

var configFlag = cmds.Var[string]("-config")

func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	// explicit file
	if *configFlag != "" {
		paths = append(paths, *configFlag)
		return configs.NewLoader(paths, schema)
	}

	// tests must not pick up host files
	if mode.IsHermetic() {
		return configs.NewLoader(nil, schema)
	}

	filenames := []string{
		"catdraw.cue",
		".catdraw.cue",
	}

	// working directory
	workingDir, err := os.Getwd()
	if err == nil {
		for _, filename := range filenames {
			path := filepath.Join(workingDir, filename)
			_, err := os.Stat(path)
			if err == nil {
				paths = append(paths, path)
			}
		}
	}

	// user config dir
	configDir, err := os.UserConfigDir()
	if err == nil {
		for _, filename := range filenames {
			path := filepath.Join(configDir, filename)
			_, err := os.Stat(path)
			if err == nil {
				paths = append(paths, path)
			}
		}
	}

	// system wide dir
	for _, filename := range filenames {
		path := filepath.Join("/etc", filename)
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}

	return configs.NewLoader(paths, schema)
}
