package config

// File represents the structure of the optional yarnix.yaml config file.
type File struct {
	Lockfile string `yaml:"lockfile"`
	NoNix    bool   `yaml:"noNix"`
	NoPatch  bool   `yaml:"noPatch"`
	Progress bool   `yaml:"progress"`
}
