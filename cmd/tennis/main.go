package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ezBadminton/gotennis/internal/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := tennis(); err != nil {
		logrus.Fatal(err)
	}
}

func tennis() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
