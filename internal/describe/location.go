package describe

import "strings"

// Location is where a set of files was taken.
type Location struct {
	Country  string
	Region   string
	City     string
	Location string
}

// Update overwrites fields with the non-empty country, region, city and
// location columns of a sheet row.
func (l *Location) Update(data map[string]string) {
	if v := data["country"]; v != "" {
		l.Country = v
	}
	if v := data["region"]; v != "" {
		l.Region = v
	}
	if v := data["city"]; v != "" {
		l.City = v
	}
	if v := data["location"]; v != "" {
		l.Location = v
	}
}

// IsZero reports whether no field is set.
func (l Location) IsZero() bool {
	return l == Location{}
}

// Tags returns the IPTC and XMP location tags.
func (l Location) Tags() map[string][]string {
	keywords := nonEmpty(l.Country, l.City, l.Location)
	return map[string][]string{
		"Country":                      {l.Country},
		"State":                        {l.Region},
		"City":                         {l.City},
		"Location":                     {l.Location},
		"Keywords":                     keywords,
		"Subject":                      keywords,
		"LocationCreatedCountryName":   {l.Country},
		"LocationCreatedProvinceState": {l.Region},
		"LocationCreatedCity":          {l.City},
		"LocationCreatedSublocation":   {l.Location},
	}
}

func (l Location) String() string {
	return strings.Join(nonEmpty(l.Country, l.Region, l.City, l.Location), ", ")
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
