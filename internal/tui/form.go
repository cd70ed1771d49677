// Package tui collects projection parameters through an interactive terminal
// form.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/iwvelando/nbfc-projection/internal/config"
	"github.com/iwvelando/nbfc-projection/pkg/constants"
	"github.com/iwvelando/nbfc-projection/pkg/validation"
)

// ErrAborted is returned when the user cancels the form.
var ErrAborted = errors.New("parameter entry aborted")

// formValues holds the raw text of every input while the form is open.
type formValues struct {
	capital         string
	processingFee   string
	monthlyInterest string
	costOfFunds     string
	marketing       string
	opexMonth2      string
	opexMonth3      string
	opexMonth4Plus  string
	avgLoanTicket   string
	rotationDays    string
	collectT0       string
	collectT30      string
	collectT60      string
	collectT90      string
}

func newFormValues(p config.Parameters) *formValues {
	capital := make([]string, len(p.CapitalCrores))
	for i, c := range p.CapitalCrores {
		capital[i] = formatFloat(c)
	}
	return &formValues{
		capital:         strings.Join(capital, ", "),
		processingFee:   formatFloat(p.ProcessingFeeRate),
		monthlyInterest: formatFloat(p.MonthlyInterestRate),
		costOfFunds:     formatFloat(p.CostOfFundsRate),
		marketing:       formatFloat(p.MarketingRate),
		opexMonth2:      formatFloat(p.OpexRates.Month2),
		opexMonth3:      formatFloat(p.OpexRates.Month3),
		opexMonth4Plus:  formatFloat(p.OpexRates.Month4Plus),
		avgLoanTicket:   formatFloat(p.AvgLoanTicket),
		rotationDays:    strconv.Itoa(p.RotationCycleDays),
		collectT0:       formatFloat(p.Collections.T0),
		collectT30:      formatFloat(p.Collections.T30),
		collectT60:      formatFloat(p.Collections.T60),
		collectT90:      formatFloat(p.Collections.T90),
	}
}

// apply parses the inputs over base and validates the result. Month-one
// OpEx is not editable and keeps the base value.
func (v *formValues) apply(base config.Parameters) (config.Parameters, error) {
	p := base
	var errs []error

	capital, err := ParseCapital(v.capital)
	errs = append(errs, err)
	p.CapitalCrores = capital

	floats := []struct {
		name  string
		raw   string
		field *float64
	}{
		{"processingFeeRate", v.processingFee, &p.ProcessingFeeRate},
		{"monthlyInterestRate", v.monthlyInterest, &p.MonthlyInterestRate},
		{"costOfFundsRate", v.costOfFunds, &p.CostOfFundsRate},
		{"marketingRate", v.marketing, &p.MarketingRate},
		{"opexRates.month2", v.opexMonth2, &p.OpexRates.Month2},
		{"opexRates.month3", v.opexMonth3, &p.OpexRates.Month3},
		{"opexRates.month4Plus", v.opexMonth4Plus, &p.OpexRates.Month4Plus},
		{"avgLoanTicket", v.avgLoanTicket, &p.AvgLoanTicket},
		{"collections.t0", v.collectT0, &p.Collections.T0},
		{"collections.t30", v.collectT30, &p.Collections.T30},
		{"collections.t60", v.collectT60, &p.Collections.T60},
		{"collections.t90", v.collectT90, &p.Collections.T90},
	}
	for _, f := range floats {
		value, err := parseNumber(f.name, f.raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		*f.field = value
	}

	days, err := strconv.Atoi(strings.TrimSpace(v.rotationDays))
	if err != nil {
		errs = append(errs, fmt.Errorf("rotationCycleDays: %q is not a whole number", v.rotationDays))
	} else {
		p.RotationCycleDays = days
	}

	if err := errors.Join(errs...); err != nil {
		return base, err
	}
	if err := p.Validate(); err != nil {
		return base, err
	}
	return p, nil
}

// ParseCapital parses a comma or space separated list of monthly capital
// injections in Crores.
func ParseCapital(raw string) ([]float64, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	if len(fields) > constants.CapitalInjectionMonths {
		return nil, fmt.Errorf("capitalCrores accepts at most %d months: got %d",
			constants.CapitalInjectionMonths, len(fields))
	}

	capital := make([]float64, 0, len(fields))
	for i, field := range fields {
		value, err := parseNumber(fmt.Sprintf("capitalCrores[month %d]", i+1), field)
		if err != nil {
			return nil, err
		}
		if err := validation.ValidateNonNegative(fmt.Sprintf("capitalCrores[month %d]", i+1), value); err != nil {
			return nil, err
		}
		capital = append(capital, value)
	}
	return capital, nil
}

func parseNumber(name, raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", name, raw)
	}
	return value, nil
}

func rangeValidator(name string, minimum, maximum float64) func(string) error {
	return func(raw string) error {
		value, err := parseNumber(name, raw)
		if err != nil {
			return err
		}
		return validation.ValidateRange(name, value, minimum, maximum)
	}
}

func intRangeValidator(name string, minimum, maximum int) func(string) error {
	return func(raw string) error {
		value, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%s: %q is not a whole number", name, raw)
		}
		return validation.ValidateIntRange(name, value, minimum, maximum)
	}
}

func nonNegativeValidator(name string) func(string) error {
	return func(raw string) error {
		value, err := parseNumber(name, raw)
		if err != nil {
			return err
		}
		return validation.ValidateNonNegative(name, value)
	}
}

func capitalValidator(raw string) error {
	_, err := ParseCapital(raw)
	return err
}

func percentInput(title, name string, value *string, minimum, maximum float64) *huh.Input {
	return huh.NewInput().
		Title(title).
		Description(fmt.Sprintf("%s%% to %s%%", formatFloat(minimum), formatFloat(maximum))).
		Value(value).
		Validate(rangeValidator(name, minimum, maximum))
}

func newForm(v *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Capital Deployment").
				Description("Capital injected in months 1 to 5, in ₹ Crores."),
			huh.NewInput().
				Title("Capital by month (Cr)").
				Placeholder("5, 4, 4, 4, 3").
				Value(&v.capital).
				Validate(capitalValidator),
		),
		huh.NewGroup(
			huh.NewNote().Title("Revenue Parameters"),
			percentInput("Processing fee", "processingFeeRate", &v.processingFee,
				constants.MinProcessingFeeRate, constants.MaxProcessingFeeRate),
			percentInput("Monthly interest", "monthlyInterestRate", &v.monthlyInterest,
				constants.MinMonthlyInterestRate, constants.MaxMonthlyInterestRate),
			huh.NewInput().
				Title("Average loan ticket (₹)").
				Value(&v.avgLoanTicket).
				Validate(rangeValidator("avgLoanTicket", constants.MinAvgLoanTicket, constants.MaxAvgLoanTicket)),
			huh.NewInput().
				Title("Rotation cycle (days)").
				Value(&v.rotationDays).
				Validate(intRangeValidator("rotationCycleDays", constants.MinRotationCycleDays, constants.MaxRotationCycleDays)),
		),
		huh.NewGroup(
			huh.NewNote().
				Title("Cost Parameters").
				Description(fmt.Sprintf("Month 1 OpEx is fixed at %g%%.", constants.FirstMonthOpexRate)),
			percentInput("Cost of funds (monthly)", "costOfFundsRate", &v.costOfFunds,
				constants.MinCostOfFundsRate, constants.MaxCostOfFundsRate),
			percentInput("Marketing", "marketingRate", &v.marketing,
				constants.MinMarketingRate, constants.MaxMarketingRate),
			percentInput("OpEx month 2", "opexRates.month2", &v.opexMonth2, constants.MinOpexRate, constants.MaxOpexRate),
			percentInput("OpEx month 3", "opexRates.month3", &v.opexMonth3, constants.MinOpexRate, constants.MaxOpexRate),
			percentInput("OpEx month 4+", "opexRates.month4Plus", &v.opexMonth4Plus, constants.MinOpexRate, constants.MaxOpexRate),
		),
		huh.NewGroup(
			huh.NewNote().
				Title("Collection Efficiency").
				Description("Percentage collected in each window; the remainder defaults."),
			huh.NewInput().Title("On time (T+0)").Value(&v.collectT0).Validate(nonNegativeValidator("collections.t0")),
			huh.NewInput().Title("T+30").Value(&v.collectT30).Validate(nonNegativeValidator("collections.t30")),
			huh.NewInput().Title("T+60").Value(&v.collectT60).Validate(nonNegativeValidator("collections.t60")),
			huh.NewInput().Title("T+90").Value(&v.collectT90).Validate(nonNegativeValidator("collections.t90")),
		),
	).WithTheme(huh.ThemeCharm())
}

// CollectParameters runs the form prefilled with defaults and returns the
// validated parameters.
func CollectParameters(defaults config.Parameters) (config.Parameters, error) {
	values := newFormValues(defaults)
	if err := newForm(values).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return defaults, ErrAborted
		}
		return defaults, fmt.Errorf("failed to run parameter form: %w", err)
	}
	return values.apply(defaults)
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
