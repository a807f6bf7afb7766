package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"travelease/internal/catalog"
	"travelease/internal/fallback"
	"travelease/pkg/model"
)

type seatMapOptions struct {
	file string
	seed uint64
}

// NewSeatMapCommand renders the demo seat map for a flight offer read from a
// file or stdin. It runs offline.
func NewSeatMapCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &seatMapOptions{}

	cmd := &cobra.Command{
		Use:   "seatmap",
		Short: "Print the demo seat map for a flight offer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			offer, err := readOffer(cmd, opts.file)
			if err != nil {
				return err
			}

			cat, err := catalog.Default()
			if err != nil {
				return err
			}

			var src rand.Source
			if opts.seed != 0 {
				src = rand.NewPCG(opts.seed, opts.seed)
			}

			seatMap, err := fallback.New(cat, src, nil).SeatMap(offer)
			if err != nil {
				return err
			}

			if rootOpts.Format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(seatMap)
			}
			return renderSeatMap(cmd.OutOrStdout(), seatMap)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "-", "flight offer JSON file (- for stdin)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for seat availability (0 = random)")

	return cmd
}

func readOffer(cmd *cobra.Command, path string) (json.RawMessage, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read flight offer: %w", err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("flight offer is not valid JSON")
	}
	return json.RawMessage(data), nil
}

// renderSeatMap draws one line per row: the seat letter when available, "x"
// when occupied and blank where there is no seat.
func renderSeatMap(w io.Writer, resp model.SeatMapResponse) error {
	for _, sm := range resp.Data {
		if _, err := fmt.Fprintf(w, "%s%s %s -> %s (%s)\n",
			sm.CarrierCode, sm.Number, sm.Departure.IataCode, sm.Arrival.IataCode, sm.Aircraft.Code); err != nil {
			return err
		}

		for _, deck := range sm.Decks {
			grid := make(map[[2]int]string, len(deck.Seats))
			for _, seat := range deck.Seats {
				mark := "x"
				if len(seat.TravelerPricing) > 0 && seat.TravelerPricing[0].SeatAvailabilityStatus == model.SeatAvailable {
					mark = string(rune('A' + seat.Coordinates.Y))
				}
				grid[[2]int{seat.Coordinates.X, seat.Coordinates.Y}] = mark
			}

			for row := deck.DeckConfiguration.StartRow; row <= deck.DeckConfiguration.EndRow; row++ {
				var b strings.Builder
				fmt.Fprintf(&b, "%2d ", row)
				for col := 0; col < fallback.SeatColumns; col++ {
					if col == fallback.SeatColumns/2 {
						b.WriteString("  ")
					}
					mark, ok := grid[[2]int{row, col}]
					if !ok {
						mark = " "
					}
					b.WriteString(mark)
				}
				if _, err := fmt.Fprintln(w, strings.TrimRight(b.String(), " ")); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
