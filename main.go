package main

import "github.com/cgint/vscode-chat-extractor/cmd"

func main() {
	cmd.Execute()
}
