package testutil

// Message JSON fixtures covering the schema variants observed in real
// stores. Shared between normalizer, grouper and server tests.
const (
	// UserMessageJSON is a user turn with both attachment sources populated.
	UserMessageJSON = `{
		"type": 1,
		"text": "Please look at these files",
		"context": {
			"fileSelections": [
				{"uri": {"fsPath": "/home/user/project/main.go"}},
				{"uri": {"path": "/home/user/project/util.go"}}
			]
		},
		"attachedFileCodeChunksUris": [
			{"path": "/home/user/project/main.go"},
			{"path": "/home/user/project/parser.go"}
		]
	}`

	// AssistantMessageJSON is an assistant turn with code blocks and symbol
	// links, one of them a JSON string needing a nested parse.
	AssistantMessageJSON = `{
		"type": 2,
		"text": "Here is the fix",
		"codeBlocks": [
			{"languageId": "go", "content": "x := 1", "uri": {"path": "/project/fix.go"}},
			{"languageId": "python", "content": "x = 1"}
		],
		"symbolLinks": [
			"{\"symbolName\": \"ParseRecordKey\", \"relativeWorkspacePath\": \"internal/grouper.go\"}",
			{"symbolName": "Decode", "relativeWorkspacePath": "internal/decoder.go"}
		]
	}`

	// ToolMessageJSON carries all three tool-output containers at once.
	ToolMessageJSON = `{
		"text": "",
		"toolFormerData": {
			"tool": "search",
			"status": "completed",
			"result": "{\"output\": \"42\"}"
		},
		"interpreterResults": [
			{"name": "run_python", "status": "ok", "output": "done"}
		],
		"toolResults": [
			{"toolName": "grep", "result": {"hits": 3}}
		]
	}`
)
