// Package tai provides instants on International Atomic Time (TAI), a continuous timescale
// without leap seconds, and converts them to and from UTC.
//
// A Time is a calendar day number plus the nanoseconds elapsed within that TAI day. Every TAI day
// has exactly 86400 seconds; the extra second that UTC inserts on a leap second day only shows up
// when a Time is broken down into UTC components, where the clock reads 23:59:60.
//
// The difference TAI−UTC is looked up in a LeapSecondTable. UTC as it exists today began on
// 1972-01-01 with an offset of 10 seconds, and every leap second since then added one more second.
// For instants before 1972 the converter keeps using 10 seconds and logs that the result is
// approximate. For instants after the table's KnownAsOf date it logs that the table may be stale.
//
// Usage:
//
//	conv, err := tai.NewConverter(tai.WithLogger(slog.Default()))
//	if err != nil {
//		return err
//	}
//
//	t, err := conv.Parse("2016-12-31 23:59:60 UTC")
//	if err != nil {
//		return err
//	}
//
//	fmt.Println(t) // 2017-01-01 00:00:36 TAI
//
// A leap second table can be loaded from a TOML file with LoadLeapSecondTable and kept up to date
// with WatchLeapSecondFile and Converter.SetLeapSecondTable.
package tai
