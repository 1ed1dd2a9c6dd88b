package config

import (
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v2"
)

// FromFile reads and parses config from the given path. The file is first
// rendered as a text template with the process environment as data, then
// remaining $VAR references are expanded before yaml unmarshalling.
func FromFile(filePath string, cfg interface{}) error {
	envMap := make(map[string]string)
	for _, envStr := range os.Environ() {
		pair := strings.SplitN(envStr, "=", 2)
		envMap[pair[0]] = pair[1]
	}

	t, err := template.ParseFiles(filePath)
	if err != nil {
		return err
	}
	strWriter := &strings.Builder{}
	if err := t.Execute(strWriter, envMap); err != nil {
		return err
	}

	content := os.ExpandEnv(strWriter.String())
	return yaml.Unmarshal([]byte(content), cfg)
}
