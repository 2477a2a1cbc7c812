package cmd

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// check aborts the command with err on standard error if err is not nil.
func check(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error, %v\n", err)
		os.Exit(-1)
	}
}

// askForConfirmation shows msg and asks the user to type y or n (typing
// ENTER defaults to no).
func askForConfirmation(msg string) bool {
	fmt.Println(msg)
	reader := bufio.NewReader(os.Stdin)
	defaultInput := byte('N')

	for {
		input, _ := reader.ReadString('\n')
		c := string([]byte(input)[0])[0]
		if c == 10 {
			// ENTER
			c = defaultInput
		}
		switch c {
		case 'Y', 'y':
			return true
		case 'N', 'n':
			return false
		}
	}
}

// confirmIfExists checks whether a file exists, and if so asks the user
// for confirmation to go forward. It returns true if the file doesn't
// exist, or if the user answered yes on the command line. If ok is false
// or err is not nil, the operation on path should be aborted.
func confirmIfExists(path, msg string) (ok bool, err error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			// file does not exist
			return true, nil
		}
		return false, err
	}
	return askForConfirmation(msg), nil
}

func unmarshalYAMLFile(path string, out interface{}) error {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(buf, out)
}

func marshalYAMLFile(path string, in interface{}) error {
	buf, err := yaml.Marshal(in)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, buf, 0644)
}

// loadSettings returns the settings at path, or the defaults if path is
// empty.
func loadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	err := unmarshalYAMLFile(path, &s)
	return s, err
}
