package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gitlab.com/aoterocom/AOStockTrader/models"
)

// Inputs are the three values the user gives to a simulation. They are not range
// checked: a negative investment or zero months go through as they are.
type Inputs struct {
	MonthlyInvestment float64
	Risk              float64
	Months            int
}

// Form labels, in prompt order.
var formLabels = [...]string{
	"Monthly Investment ($):",
	"Risk Level (0.5-2.0):",
	"Months to Simulate:",
}

// ParseInputs converts the raw form values.
func ParseInputs(investment, risk, months string) (Inputs, error) {
	var inputs Inputs
	var err error

	inputs.MonthlyInvestment, err = strconv.ParseFloat(strings.TrimSpace(investment), 64)
	if err != nil {
		return Inputs{}, fmt.Errorf("%w: monthly investment %q is not a number", models.ErrInputFormat, investment)
	}
	inputs.Risk, err = strconv.ParseFloat(strings.TrimSpace(risk), 64)
	if err != nil {
		return Inputs{}, fmt.Errorf("%w: risk level %q is not a number", models.ErrInputFormat, risk)
	}
	inputs.Months, err = strconv.Atoi(strings.TrimSpace(months))
	if err != nil {
		return Inputs{}, fmt.Errorf("%w: months %q is not an integer", models.ErrInputFormat, months)
	}
	return inputs, nil
}

// PromptInputs asks the three form questions on w and reads one answer per line from r.
func PromptInputs(r io.Reader, w io.Writer) (Inputs, error) {
	scanner := bufio.NewScanner(r)
	var answers [len(formLabels)]string
	for i, label := range formLabels {
		fmt.Fprint(w, label+" ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return Inputs{}, err
			}
			return Inputs{}, fmt.Errorf("%w: no answer to %q", models.ErrInputFormat, label)
		}
		answers[i] = scanner.Text()
	}
	return ParseInputs(answers[0], answers[1], answers[2])
}
