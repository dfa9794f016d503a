package config

import (
	"flag"
	"fmt"
	"io"

	"deal_feed/internal/domain/value"
)

const (
	CommandList  = "list"
	CommandWatch = "watch"
	CommandDeal  = "deal"
)

// CLI то, что задаётся только флагами: команда и фильтры.
type CLI struct {
	Command string `validate:"oneof=list watch deal"`
	DealID  string `validate:"required_if=Command deal"`
	Filters value.RawFilters
	Mine    bool
	JSON    bool
}

// parseFlags разбирает "dealfeed [flags] [list|watch|deal ID]".
func (c *Config) parseFlags(args []string) error {
	fs := flag.NewFlagSet("dealfeed", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	apiURL := fs.String("api", "", "deals API base URL (DEALS_API_URL wins)")
	userID := fs.String("user", "", "signed-in user id for -mine (DEALS_USER_ID wins)")

	fs.StringVar(&c.CLI.Filters.Query, "q", "", "search in title, description and merchant")
	fs.StringVar(&c.CLI.Filters.Category, "category", "all", "all|food|transport|housing|shopping|services")
	fs.StringVar(&c.CLI.Filters.TimeWindow, "within", "all", "all|24h|48h|72h")
	fs.StringVar(&c.CLI.Filters.Sort, "sort", "none", "none|ending-soon|discount")
	fs.StringVar(&c.CLI.Filters.SellerID, "seller", "", "only deals of this seller")
	fs.BoolVar(&c.CLI.Mine, "mine", false, "only my deals")
	fs.BoolVar(&c.CLI.JSON, "json", false, "print JSON instead of a table")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("fs.Parse: %w", err)
	}

	if c.DealsAPI.URL == "" {
		c.DealsAPI.URL = *apiURL
	}
	if c.App.UserID == "" {
		c.App.UserID = *userID
	}

	c.CLI.Command = CommandList
	if fs.NArg() > 0 {
		c.CLI.Command = fs.Arg(0)
	}
	if fs.NArg() > 1 {
		c.CLI.DealID = fs.Arg(1)
	}

	return nil
}
