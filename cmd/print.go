package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/xeonx/timeago"

	"github.com/agilestacks/hub-utils/duo-status/internal/status"
)

func printComponents(w io.Writer, components []status.Component) error {
	switch Out {
	case JsonO:
		pretty, err := json.MarshalIndent(components, "", "\t")
		if err != nil {
			return fmt.Errorf("failed to format json: %w", err)
		}
		fmt.Fprintln(w, string(pretty))
	case TableO:
		if len(components) > 0 {
			tableFmtComponents(w, components)
		}
	default:
		for _, component := range components {
			fmt.Fprintln(w, component.String())
		}
	}
	return nil
}

func tableFmtComponents(w io.Writer, components []status.Component) {
	headerFmt := color.New(color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()
	tbl := table.New("ID", "NAME", "STATUS", "UPDATED")
	tbl.WithHeaderFormatter(headerFmt).
		WithFirstColumnFormatter(columnFmt).
		WithWriter(w)
	for _, component := range components {
		updated := ""
		if component.UpdatedAt != nil {
			updated = timeago.English.Format(*component.UpdatedAt)
		}
		tbl.AddRow(component.ID, component.Name, component.Status, updated)
	}
	tbl.Print()
}
