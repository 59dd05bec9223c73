package main

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/paperwheel/go-wordedit/pkg/wordedit"
)

type replaceResult struct {
	File   string `json:"file"`
	Count  int    `json:"count"`
	DryRun bool   `json:"dry_run,omitempty"`
	Error  string `json:"error,omitempty"`
}

type statusResult struct {
	Status string `json:"status"`
	Found  bool   `json:"found"`
}

type normalizeResult struct {
	File    string `json:"file"`
	Removed int    `json:"removed"`
}

func newReplaceCmd(opts *rootOptions) *cobra.Command {
	var glob string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "replace <file> <old> <new>",
		Short: "Replace text throughout a document, tables included",
		Long: `Replace finds and replaces text across run boundaries. Occurrences
confined to one run keep their formatting; occurrences split across runs
collapse the paragraph to the first run's formatting.

With --glob the file argument is a directory and the pattern selects the
documents to edit, e.g.

    wordedit replace reports/ --glob '**/*.docx' draft final`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, old, new := args[0], args[1], args[2]
			if glob != "" {
				return opts.replaceBatch(cmd, path, glob, old, new, dryRun)
			}

			n, err := replaceOne(path, old, new, dryRun)
			if err != nil {
				return err
			}
			if opts.jsonOut {
				return printJSON(cmd, replaceResult{File: path, Count: n, DryRun: dryRun})
			}
			opts.reportReplace(cmd, path, old, n, dryRun)
			return nil
		},
	}

	cmd.Flags().StringVar(&glob, "glob", "", "treat <file> as a directory and edit every match of this pattern")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "count occurrences without writing any file")
	return cmd
}

func replaceOne(path, old, new string, dryRun bool) (int, error) {
	if dryRun {
		doc, err := wordedit.Open(path)
		if err != nil {
			return 0, err
		}
		return doc.ReplaceAll(old, new), nil
	}
	return wordedit.ReplaceInFile(path, old, new)
}

func (o *rootOptions) reportReplace(cmd *cobra.Command, path, old string, n int, dryRun bool) {
	switch {
	case dryRun:
		o.successf(cmd, "Would replace %d occurrence(s) of '%s' in %s.", n, old, path)
	case n == 0:
		o.failuref(cmd, "No occurrences of '%s' in %s.", old, path)
	default:
		o.successf(cmd, "Replaced %d occurrence(s) of '%s' in %s.", n, old, path)
	}
}

// replaceBatch edits every file matching the pattern under root. A file
// that fails is reported and skipped; the command fails only when no
// file succeeds.
func (o *rootOptions) replaceBatch(cmd *cobra.Command, root, pattern, old, new string, dryRun bool) error {
	paths, err := doublestar.FilepathGlob(filepath.Join(root, pattern))
	if err != nil {
		return errors.Errorf("expanding glob %q: %w", pattern, err)
	}
	if len(paths) == 0 {
		return errors.Errorf("no files match %q under %s", pattern, root)
	}

	var results []replaceResult
	failed := 0
	total := 0
	for _, path := range paths {
		n, err := replaceOne(path, old, new, dryRun)
		if err != nil {
			failed++
			logger := wordedit.Logger()
			logger.Error().Err(err).Str("file", path).Msg("replace failed")
			o.failuref(cmd, "%s: %v", path, err)
			results = append(results, replaceResult{File: path, Error: err.Error()})
			continue
		}
		total += n
		results = append(results, replaceResult{File: path, Count: n, DryRun: dryRun})
		o.reportReplace(cmd, path, old, n, dryRun)
	}

	if o.jsonOut {
		if err := printJSON(cmd, results); err != nil {
			return err
		}
	} else if len(paths) > 1 {
		o.successf(cmd, "Total: %d occurrence(s) across %d file(s).", total, len(paths)-failed)
	}

	if failed == len(paths) {
		return errors.New("replacement failed in every matched file")
	}
	return nil
}

func newInsertHeaderCmd(opts *rootOptions) *cobra.Command {
	var target, title, position, style string

	cmd := &cobra.Command{
		Use:   "insert-header <file>",
		Short: "Insert a heading near anchor text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := wordedit.ParsePosition(position)
			if err != nil {
				return err
			}
			if style == "" {
				style = opts.defaultStyle
			}

			status, err := wordedit.InsertHeaderNearText(args[0], target, title, pos, style)
			if err != nil {
				return err
			}
			return opts.reportStatus(cmd, status)
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "anchor text to search for")
	cmd.Flags().StringVar(&title, "title", "", "heading text")
	cmd.Flags().StringVar(&position, "position", "after", "before or after the anchor paragraph")
	cmd.Flags().StringVar(&style, "style", "", `style name (default "Heading 1", or default_style from config)`)
	cmd.MarkFlagRequired("target")
	cmd.MarkFlagRequired("title")
	return cmd
}

func newInsertLineCmd(opts *rootOptions) *cobra.Command {
	var target, text, position, style string

	cmd := &cobra.Command{
		Use:   "insert-line <file>",
		Short: "Insert a paragraph near anchor text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := wordedit.ParsePosition(position)
			if err != nil {
				return err
			}

			status, err := wordedit.InsertParagraphNearText(args[0], target, text, pos, style)
			if err != nil {
				return err
			}
			return opts.reportStatus(cmd, status)
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "anchor text to search for")
	cmd.Flags().StringVar(&text, "text", "", "paragraph text")
	cmd.Flags().StringVar(&position, "position", "after", "before or after the anchor paragraph")
	cmd.Flags().StringVar(&style, "style", "", "style name (default: inherit the anchor paragraph's style)")
	cmd.MarkFlagRequired("target")
	cmd.MarkFlagRequired("text")
	return cmd
}

func newNormalizeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <file>",
		Short: "Merge equal-formatted runs and drop empty ones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := wordedit.NormalizeFile(args[0])
			if err != nil {
				return err
			}
			if opts.jsonOut {
				return printJSON(cmd, normalizeResult{File: args[0], Removed: n})
			}
			if n == 0 {
				opts.successf(cmd, "Nothing to normalize in %s.", args[0])
			} else {
				opts.successf(cmd, "Removed %d redundant run(s) from %s.", n, args[0])
			}
			return nil
		},
	}
}

// reportStatus prints an insertion outcome: green when content landed,
// red when the anchor text was not found.
func (o *rootOptions) reportStatus(cmd *cobra.Command, status string) error {
	found := !strings.HasPrefix(status, "Target text ")
	if o.jsonOut {
		return printJSON(cmd, statusResult{Status: status, Found: found})
	}
	if found {
		o.successf(cmd, "%s", status)
	} else {
		o.failuref(cmd, "%s", status)
	}
	return nil
}
