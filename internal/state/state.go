// Package state models one wizard session as an immutable value that only
// changes through Reduce.
package state

import (
	"investment-advisor/internal/dto"
	"investment-advisor/pkg/utils"
)

type AppState struct {
	User           *dto.User                     `json:"user"`
	Profile        *dto.InvestmentProfile        `json:"investment_profile"`
	Recommendation *dto.InvestmentRecommendation `json:"recommendation"`
	CurrentStep    int                           `json:"current_step"`
	IsLoading      bool                          `json:"is_loading"`
	ExchangeRate   float64                       `json:"exchange_rate"`
}

// Initial is the state of a fresh session.
func Initial(defaultRate float64) AppState {
	return AppState{
		CurrentStep:  dto.WizardFirstStep,
		ExchangeRate: defaultRate,
	}
}

// Action is a state transition. Apply must not mutate its input.
type Action interface {
	Apply(s AppState) AppState
}

// Reduce applies actions in order and returns the resulting state.
func Reduce(s AppState, actions ...Action) AppState {
	for _, a := range actions {
		s = a.Apply(s)
	}
	return s
}

type SetUser struct {
	User *dto.User
}

func (a SetUser) Apply(s AppState) AppState {
	if a.User == nil {
		s.User = nil
		return s
	}
	u := *a.User
	s.User = &u
	return s
}

type SetProfile struct {
	Profile dto.InvestmentProfile
}

func (a SetProfile) Apply(s AppState) AppState {
	p := a.Profile
	p.Sectors = append([]string(nil), a.Profile.Sectors...)
	s.Profile = &p
	return s
}

// SetRecommendation replaces any recommendation already held.
type SetRecommendation struct {
	Recommendation dto.InvestmentRecommendation
}

func (a SetRecommendation) Apply(s AppState) AppState {
	r := a.Recommendation
	s.Recommendation = &r
	return s
}

type SetStep struct {
	Step int
}

func (a SetStep) Apply(s AppState) AppState {
	s.CurrentStep = utils.ClampInt(a.Step, dto.WizardFirstStep, dto.WizardLastStep)
	return s
}

type NextStep struct{}

func (NextStep) Apply(s AppState) AppState {
	return SetStep{Step: s.CurrentStep + 1}.Apply(s)
}

type PreviousStep struct{}

func (PreviousStep) Apply(s AppState) AppState {
	return SetStep{Step: s.CurrentStep - 1}.Apply(s)
}

type SetLoading struct {
	Loading bool
}

func (a SetLoading) Apply(s AppState) AppState {
	s.IsLoading = a.Loading
	return s
}

type SetExchangeRate struct {
	Rate float64
}

func (a SetExchangeRate) Apply(s AppState) AppState {
	if a.Rate > 0 {
		s.ExchangeRate = a.Rate
	}
	return s
}

// StartOver drops the recommendation and returns to the first step, keeping
// the user and the last profile.
type StartOver struct{}

func (StartOver) Apply(s AppState) AppState {
	s.Recommendation = nil
	s.IsLoading = false
	s.CurrentStep = dto.WizardFirstStep
	return s
}
