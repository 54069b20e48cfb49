package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/starapp/internal/domain"
	"github.com/aalvaropc/starapp/internal/usecase"
)

func signsCmd() *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "signs",
		Short: "List the twelve zodiac signs with their date ranges and birthstones",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := loadEnv()
			if err != nil {
				return err
			}
			return printSigns(cmd.OutOrStdout(), usecase.NewListSigns().Execute(), pickFormat(cmd, format, env.cfg))
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func printSigns(w io.Writer, signs []domain.ZodiacEntry, format string) error {
	switch format {
	case "json":
		return writeJSON(w, signs)
	case "pretty", "":
		for _, e := range signs {
			fmt.Fprintf(w, "%s  %-12s %-16s %s (%s)\n", e.Symbol, e.Name, e.DateRange, e.Birthstone, e.BirthstoneColor)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
