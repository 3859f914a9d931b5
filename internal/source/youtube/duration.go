package youtube

import (
	"regexp"
	"strconv"
)

var durationRE = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// ParseDuration converts an ISO 8601 duration such as "PT1H2M3S" to seconds.
// Unparseable input yields 0.
func ParseDuration(iso string) int {
	m := durationRE.FindStringSubmatch(iso)
	if m == nil {
		return 0
	}

	total := 0
	for i, mult := range []int{86400, 3600, 60, 1} {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return 0
		}
		total += n * mult
	}
	return total
}
