package cli

import "github.com/spf13/pflag"

// windowFlags registers the --from/--days pair shared by commands that look
// at a range of days.
func windowFlags(fs *pflag.FlagSet, from *string, days *int, defaultDays int, daysUsage string) {
	fs.StringVar(from, "from", "", "First day (YYYY-MM-DD, default today)")
	fs.IntVar(days, "days", defaultDays, daysUsage)
}
