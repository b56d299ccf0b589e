package main

import (
	"bookstore-api/internals/commands"
	logger "bookstore-api/loggers"
)

func main() {
	logger.Logger.Info("welcome to bookstore api")
	commands.Execute()
}
