package mongodb

import "time"

type Config struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`

	Database    string      `yaml:"database"`
	Collections Collections `yaml:"collections"`

	Auth struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"auth"`

	Pool struct {
		MinSize uint64 `yaml:"minSize"`
		MaxSize uint64 `yaml:"maxSize"`
	} `yaml:"pool"`
}

type Collections struct {
	Interviewers string `yaml:"interviewers"`
	Interviews   string `yaml:"interviews"`
	Profiles     string `yaml:"profiles"`
	Tests        string `yaml:"tests"`
}
