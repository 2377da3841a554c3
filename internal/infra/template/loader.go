package template

import (
	"os"

	"pro-video-services/internal/domain/booking"
	"pro-video-services/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of a weekly availability override:
//
//	weekdays:
//	  monday: ["09:00", "10:00"]
//	  friday: ["09:00"]
type File struct {
	Weekdays map[string][]string `yaml:"weekdays"`
}

// Load returns the default template when path is empty.
func Load(path string) (booking.WeeklyTemplate, error) {
	if path == "" {
		return booking.DefaultWeeklyTemplate(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return booking.WeeklyTemplate{}, errs.Wrapf(err, "read availability template %s", path)
	}
	return Parse(raw)
}

func Parse(raw []byte) (booking.WeeklyTemplate, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return booking.WeeklyTemplate{}, errs.Wrap(err, "parse availability template")
	}
	if len(f.Weekdays) == 0 {
		return booking.WeeklyTemplate{}, errs.New("availability template defines no weekdays")
	}

	tpl, err := booking.NewWeeklyTemplate(f.Weekdays)
	if err != nil {
		return booking.WeeklyTemplate{}, errs.Wrap(err, "invalid availability template")
	}
	return tpl, nil
}
