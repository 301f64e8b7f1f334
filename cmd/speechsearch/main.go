package main

import "speech-search/cmd/speechsearch/cmd"

// @title Speech Search API
// @version 1.0
// @description Transcribes uploaded audio through an ASR service and searches the stored transcripts.
// @host localhost:5000
// @BasePath /api
// @schemes http
func main() {
	cmd.Execute()
}
