package api

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/urbanmorph/transport-qol-api/schema"
	"github.com/urbanmorph/transport-qol-api/utils"
)

// localizeScore replaces dimension and indicator labels with translations for
// lang. Missing translations keep the built-in English labels.
func localizeScore(qol *schema.CityQoLScore, lang string) {
	if lang == "" {
		return
	}

	localizer := utils.NewLocalizer(lang)
	for i := range qol.Dimensions {
		dim := &qol.Dimensions[i]
		if name, err := localizer.Localize(&i18n.LocalizeConfig{
			MessageID: fmt.Sprintf("dimensions.%s.name", dim.Key),
		}); err == nil {
			dim.Label = name
		}
		for j := range dim.Indicators {
			ind := &dim.Indicators[j]
			if name, err := localizer.Localize(&i18n.LocalizeConfig{
				MessageID: fmt.Sprintf("indicators.%s.name", ind.Key),
			}); err == nil {
				ind.Label = name
			}
		}
	}
}
