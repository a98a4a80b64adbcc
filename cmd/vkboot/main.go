package main

import (
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
)

func init() {
	// SDL and the vulkan loader expect calls from the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Errorf("%+v", err)
		os.Exit(1)
	}
}
