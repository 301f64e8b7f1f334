package batch

import (
	"fmt"

	"github.com/tealeg/xlsx"
	apperrors "speech-search/internal/app/errors"
)

// SheetName is the worksheet written by ToExcel
const SheetName = "Transcriptions"

var excelHeader = []string{"File", "ID", "Timestamp", "Language", "Time Taken", "Transcript", "Error"}

// ToExcel writes one row per batch item to outputFilePath
func ToExcel(items []Item, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(SheetName)
	if err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, title := range excelHeader {
		headerRow.AddCell().Value = title
	}

	for _, item := range items {
		row := sheet.AddRow()
		row.AddCell().Value = item.Path

		var id, timestamp, language, timeTaken, transcript, errMessage string
		if item.Err != nil {
			errMessage = apperrors.MessageOf(item.Err)
		} else if item.Outcome != nil {
			timeTaken = fmt.Sprintf("%.2f", item.Outcome.TimeTaken)
			transcript = item.Outcome.Transcript
			language = item.Outcome.Language
			if record := item.Outcome.Record; record != nil {
				id = record.ID
				timestamp = record.Timestamp()
			}
		}

		for _, value := range []string{id, timestamp, language, timeTaken, transcript, errMessage} {
			row.AddCell().Value = value
		}
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("failed to save %s: %w", outputFilePath, err)
	}
	return nil
}
