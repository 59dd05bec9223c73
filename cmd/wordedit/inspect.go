package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/paperwheel/go-wordedit/pkg/wordedit"
)

func newPropertiesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "properties <file>",
		Short: "Show document metadata and statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			props, err := wordedit.GetDocumentProperties(args[0])
			if err != nil {
				return err
			}
			if opts.jsonOut {
				return printJSON(cmd, props)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Title:            %s\n", props.Title)
			fmt.Fprintf(out, "Author:           %s\n", props.Author)
			fmt.Fprintf(out, "Subject:          %s\n", props.Subject)
			fmt.Fprintf(out, "Keywords:         %s\n", props.Keywords)
			fmt.Fprintf(out, "Created:          %s\n", formatTime(props.Created))
			fmt.Fprintf(out, "Modified:         %s\n", formatTime(props.Modified))
			fmt.Fprintf(out, "Last modified by: %s\n", props.LastModifiedBy)
			fmt.Fprintf(out, "Revision:         %d\n", props.Revision)
			fmt.Fprintf(out, "Pages:            %d\n", props.PageCount)
			fmt.Fprintf(out, "Words:            %d\n", props.WordCount)
			fmt.Fprintf(out, "Paragraphs:       %d\n", props.ParagraphCount)
			fmt.Fprintf(out, "Tables:           %d\n", props.TableCount)
			return nil
		},
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func newTextCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "text <file>",
		Short: "Extract all document text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := wordedit.ExtractText(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

func newStructureCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "structure <file>",
		Short: "Outline paragraphs and tables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			structure, err := wordedit.GetDocumentStructure(args[0])
			if err != nil {
				return err
			}
			if opts.jsonOut {
				return printJSON(cmd, structure)
			}

			out := cmd.OutOrStdout()
			for _, p := range structure.Paragraphs {
				fmt.Fprintf(out, "[%d] (%s) %s\n", p.Index, p.Style, p.Text)
			}
			for _, t := range structure.Tables {
				fmt.Fprintf(out, "table %d: %d rows x %d columns\n", t.Index, t.Rows, t.Columns)
				for _, row := range t.Preview {
					fmt.Fprintf(out, "  %s\n", strings.Join(row, " | "))
				}
			}
			return nil
		},
	}
}

func newXMLCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "xml <file>",
		Short: "Dump the raw word/document.xml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xml, err := wordedit.GetDocumentXML(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), xml)
			return nil
		},
	}
}

func newPartsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parts <file>",
		Short: "List the package's part names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := wordedit.ListParts(args[0])
			if err != nil {
				return err
			}
			if opts.jsonOut {
				return printJSON(cmd, names)
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newPartCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "part <file> <name>",
		Short: "Dump one part's raw bytes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := wordedit.GetPart(args[0], args[1])
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// styleInfo shapes a stylesheet entry for JSON output.
type styleInfo struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Name    string `json:"name"`
	Default bool   `json:"default"`
}

func newStylesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "styles <file>",
		Short: "List the document's styles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := wordedit.Open(args[0])
			if err != nil {
				return err
			}
			styles := doc.Styles()
			if opts.jsonOut {
				views := make([]styleInfo, 0, len(styles))
				for _, s := range styles {
					views = append(views, styleInfo{ID: s.ID, Type: s.Type, Name: s.Name, Default: s.Default})
				}
				return printJSON(cmd, views)
			}

			out := cmd.OutOrStdout()
			for _, s := range styles {
				marker := ""
				if s.Default {
					marker = " (default)"
				}
				fmt.Fprintf(out, "%-20s %-12s %s%s\n", s.ID, s.Type, s.Name, marker)
			}
			return nil
		},
	}
}

func newFindCmd(opts *rootOptions) *cobra.Command {
	var exact bool

	cmd := &cobra.Command{
		Use:   "find <file> <text>",
		Short: "Find paragraphs containing text",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			indices, err := wordedit.FindParagraphsInFile(args[0], args[1], !exact)
			if err != nil {
				return err
			}
			if opts.jsonOut {
				if indices == nil {
					indices = []int{}
				}
				return printJSON(cmd, indices)
			}
			if len(indices) == 0 {
				opts.failuref(cmd, "No paragraphs match '%s'.", args[1])
				return nil
			}
			for _, i := range indices {
				fmt.Fprintln(cmd.OutOrStdout(), i)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&exact, "exact", false, "match whole paragraph text exactly")
	return cmd
}
