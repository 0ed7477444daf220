package props

import (
	"sync"

	"github.com/go-playground/validator/v10"

	cyerrors "github.com/go-cytoscape/cyrest/pkg/errors"
)

var (
	validateOnce sync.Once
	validateInst *validator.Validate
)

// validate returns the shared validator instance used by the façades.
func validate() *validator.Validate {
	validateOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// checkColors enforces strict #RRGGBB syntax on every color. The hexcolor
// rule alone also admits short #RGB forms, hence the length gate.
func checkColors(property string, colors []string) error {
	for _, color := range colors {
		if len(color) != 7 || validate().Var(color, "hexcolor") != nil {
			return cyerrors.NewDomainError(property, color, "colors must be in #RRGGBB hex form")
		}
	}
	return nil
}

// checkOpacities enforces the closed integer range [0, 255].
func checkOpacities(property string, opacities []int) error {
	for _, o := range opacities {
		if err := checkOpacity(property, o); err != nil {
			return err
		}
	}
	return nil
}

func checkOpacity(property string, opacity int) error {
	if validate().Var(opacity, "gte=0,lte=255") != nil {
		return cyerrors.NewDomainError(property, opacity, "opacity must be between 0 and 255")
	}
	return nil
}
