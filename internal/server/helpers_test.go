package server

import "os"

func writeConfig(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
