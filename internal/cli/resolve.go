package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/starapp/internal/domain"
	"github.com/aalvaropc/starapp/internal/infra/clock"
	"github.com/aalvaropc/starapp/internal/ports"
	"github.com/aalvaropc/starapp/internal/usecase"
)

func resolveCmd() *cobra.Command {
	var in domain.DateInput
	var today string
	var format string

	c := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the zodiac sign and birthstone for a birth date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := loadEnv()
			if err != nil {
				return err
			}
			format = pickFormat(cmd, format, env.cfg)

			var clk ports.Clock = clock.System{}
			if strings.TrimSpace(today) != "" {
				fixed, err := clock.ParseDate(today)
				if err != nil {
					return fmt.Errorf("invalid --today: %w", err)
				}
				clk = fixed
			}

			reading, err := usecase.NewRevealReading(clk).Execute(cmd.Context(), in)
			if err != nil {
				var ve *domain.ValidationError
				if errors.As(err, &ve) && format == "json" {
					_ = writeJSON(cmd.OutOrStdout(), map[string]string{
						"error": ve.Error(),
						"kind":  string(ve.Kind),
					})
				}
				return err
			}

			return printReading(cmd.OutOrStdout(), reading, format)
		},
	}

	c.Flags().StringVar(&in.Day, "day", "", "Day of birth (1-31)")
	c.Flags().StringVar(&in.Month, "month", "", "Month of birth (1-12)")
	c.Flags().StringVar(&in.Year, "year", "", "Year of birth (1900 or later)")
	c.Flags().StringVar(&today, "today", "", "Reference date YYYY-MM-DD (defaults to the system date)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func printReading(w io.Writer, r domain.Reading, format string) error {
	switch format {
	case "json":
		return writeJSON(w, r)
	case "pretty", "":
		e := r.Entry
		fmt.Fprintf(w, "%s %s\n", e.Symbol, e.Name)
		fmt.Fprintf(w, "Born:        %s\n", r.BirthDate)
		fmt.Fprintf(w, "Dates:       %s\n", e.DateRange)
		fmt.Fprintf(w, "Birthstone:  %s (%s)\n", e.Birthstone, e.BirthstoneColor)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
