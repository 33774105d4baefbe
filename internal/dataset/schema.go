package dataset

// Well-known column names in the sensor export format.
const (
	ColTimestamp = "Timestamp"
	ColCleaning  = "Cleaning"
	ColComments  = "Comments"
)

// KeyColumns returns the numeric measurement fields subject to outlier
// detection, median imputation and zero-clipping. The order matches the
// column order of the sensor exports.
func KeyColumns() []string {
	return []string{
		"GHI", "DNI", "DHI",
		"ModA", "ModB", "TModA", "TModB",
		"WS", "WSgust", "WD",
		"RH", "Tamb",
	}
}
