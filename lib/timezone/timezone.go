package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("America/New_York")
	if err != nil {
		panic(err)
	}
}

// force timezone to be eastern time because the county publishes
// bulletin dates in local time, a server in another timezone would
// otherwise shift Year()/Month()/Day()/Hour() when comparing against them
func Now() time.Time {
	return time.Now().In(Location)
}
