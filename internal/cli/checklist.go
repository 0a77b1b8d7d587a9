package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/runoshun/toilet-monitor/internal/app"
	"github.com/runoshun/toilet-monitor/internal/domain"
	"github.com/runoshun/toilet-monitor/internal/usecase"
)

const savedAtLayout = "02/01/2006 15:04:05"

// newShowCommand creates the show command for displaying the checklist.
func newShowCommand(c *app.Container) *cobra.Command {
	var opts struct {
		JSON bool
	}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the checklist",
		Long: `Show every checklist item with its status and note, together with
the date, location and coordinator.

Examples:
  toilet-monitor show
  toilet-monitor show --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl, err := startController(cmd, c)
			if err != nil {
				return err
			}

			if opts.JSON {
				return writeChecklistJSON(cmd.OutOrStdout(), ctrl.Checklist(), ctrl.Metadata())
			}

			labels := c.AppConfig.Export.StatusLabels
			printChecklist(cmd.OutOrStdout(), ctrl.Checklist(), ctrl.Metadata(), labels)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

// writeChecklistJSON encodes the checklist and metadata as indented JSON.
func writeChecklistJSON(w io.Writer, checklist domain.Checklist, meta domain.SessionMetadata) error {
	type jsonItem struct {
		Label  string        `json:"label"`
		Status domain.Status `json:"status"`
		Note   string        `json:"note"`
		ID     int           `json:"id"`
	}
	type jsonChecklist struct {
		LastSavedAt *time.Time `json:"last_saved_at,omitempty"`
		DateLabel   string     `json:"date_label"`
		Location    string     `json:"location"`
		Coordinator string     `json:"coordinator"`
		Items       []jsonItem `json:"items"`
		Done        int        `json:"done"`
		Total       int        `json:"total"`
	}

	done, total := checklist.Progress()
	jc := jsonChecklist{
		LastSavedAt: meta.LastSavedAt,
		DateLabel:   meta.DateLabel,
		Location:    meta.Location,
		Coordinator: meta.Coordinator,
		Items:       make([]jsonItem, 0, checklist.Len()),
		Done:        done,
		Total:       total,
	}
	for _, item := range checklist.Items() {
		jc.Items = append(jc.Items, jsonItem{
			Label:  item.Label,
			Status: item.Status,
			Note:   item.Note,
			ID:     item.ID,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jc)
}

// printChecklist prints the header lines and an aligned item table.
func printChecklist(w io.Writer, checklist domain.Checklist, meta domain.SessionMetadata, labels domain.LabelStyle) {
	done, total := checklist.Progress()
	savedAt := "-"
	if meta.LastSavedAt != nil {
		savedAt = meta.LastSavedAt.Format(savedAtLayout)
	}

	_, _ = fmt.Fprintf(w, "Hari & Tanggal: %s\n", orDash(meta.DateLabel))
	_, _ = fmt.Fprintf(w, "Lokasi: %s | Koordinator: %s\n", orDash(meta.Location), orDash(meta.Coordinator))
	_, _ = fmt.Fprintf(w, "Progres: %d/%d\n", done, total)
	_, _ = fmt.Fprintf(w, "Terakhir disimpan: %s\n\n", savedAt)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NO\tSTATUS\tCHECKLIST\tCATATAN")
	for _, item := range checklist.Items() {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			item.ID, item.Status.Label(labels), item.Label, oneLine(item.Note))
	}
	_ = tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// oneLine keeps multi-line notes on a single table row.
func oneLine(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", " "), "\n", " ")
}

// parseItemID parses a positive item id, accepting a leading '#'.
func parseItemID(s string) (int, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid item ID %q: %w", s, domain.ErrInvalidItemID)
	}
	return id, nil
}

// newSetCommand creates the set command for changing an item's status.
func newSetCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <id> <status>",
		Short: "Set the status of an item",
		Long: `Set the status of a checklist item.

Status accepts done, pending, sudah or belum in any case.

Examples:
  toilet-monitor set 3 done
  toilet-monitor set 3 belum`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}
			status, err := domain.ParseStatus(args[1])
			if err != nil {
				return fmt.Errorf("%q: %w", args[1], err)
			}

			ctrl, err := startController(cmd, c)
			if err != nil {
				return err
			}
			out, err := ctrl.SetStatus(cmd.Context(), usecase.SetStatusInput{ID: id, Status: status})
			if err != nil {
				return err
			}
			if !out.Saved {
				warnUnsaved(cmd)
			}

			item, _ := out.Checklist.Find(id)
			done, total := out.Checklist.Progress()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No. %d %s: %s (%d/%d)\n",
				item.ID, item.Label, item.Status.Label(c.AppConfig.Export.StatusLabels), done, total)
			return nil
		},
	}

	return cmd
}

// newNoteCommand creates the note command for setting an item's note.
func newNoteCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note <id> [text...]",
		Short: "Set the note of an item",
		Long: `Set the free-form note of a checklist item.
Without text the note is cleared.

Examples:
  toilet-monitor note 4 sabun habis
  toilet-monitor note 4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}
			note := strings.Join(args[1:], " ")

			ctrl, err := startController(cmd, c)
			if err != nil {
				return err
			}
			out, err := ctrl.SetNote(cmd.Context(), usecase.SetNoteInput{ID: id, Note: note})
			if err != nil {
				return err
			}
			if !out.Saved {
				warnUnsaved(cmd)
			}

			if note == "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Cleared note of item #%d\n", id)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated note of item #%d\n", id)
			}
			return nil
		},
	}

	return cmd
}

// newMetaCommand creates the meta command for editing session metadata.
func newMetaCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Date        string
		Location    string
		Coordinator string
	}

	cmd := &cobra.Command{
		Use:   "meta",
		Short: "Set date, location and coordinator",
		Long: `Set the session metadata printed on the report.
Only the flags given are changed; pass an empty value to clear a field.
Without flags the current values are shown.

Examples:
  toilet-monitor meta --date "Senin, 12/01/2026" --location "Lt 2"
  toilet-monitor meta --coordinator ""`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl, err := startController(cmd, c)
			if err != nil {
				return err
			}

			var in usecase.SetMetadataInput
			if cmd.Flags().Changed("date") {
				in.DateLabel = &opts.Date
			}
			if cmd.Flags().Changed("location") {
				in.Location = &opts.Location
			}
			if cmd.Flags().Changed("coordinator") {
				in.Coordinator = &opts.Coordinator
			}

			meta := ctrl.Metadata()
			if in != (usecase.SetMetadataInput{}) {
				out, err := ctrl.SetMetadata(cmd.Context(), in)
				if err != nil {
					return err
				}
				if !out.Saved && c.AppConfig.Storage.PersistMetadata {
					warnUnsaved(cmd)
				}
				meta = out.Metadata
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Hari & Tanggal: %s\n", orDash(meta.DateLabel))
			_, _ = fmt.Fprintf(w, "Lokasi: %s\n", orDash(meta.Location))
			_, _ = fmt.Fprintf(w, "Koordinator: %s\n", orDash(meta.Coordinator))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Date, "date", "", "Day and date label")
	cmd.Flags().StringVar(&opts.Location, "location", "", "Inspected location")
	cmd.Flags().StringVar(&opts.Coordinator, "coordinator", "", "Responsible coordinator")

	return cmd
}

// newResetCommand creates the reset command.
func newResetCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Yes bool
	}

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset all items to BELUM and clear notes",
		Long: `Reset every checklist item to BELUM, clear all notes and clear the
location and coordinator. The date label is cleared too unless
[reset] clear_date_label = false.

Asks for confirmation unless --yes is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl, err := startController(cmd, c)
			if err != nil {
				return err
			}

			out, err := ctrl.ResetAll(cmd.Context(), usecase.ResetAllInput{
				Confirmer: c.Confirmer(opts.Yes),
			})
			if err != nil {
				return err
			}
			if !out.Reset {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Reset cancelled")
				return nil
			}
			if !out.Saved {
				warnUnsaved(cmd)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Reset %d items\n", out.Checklist.Len())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "Skip confirmation")

	return cmd
}
