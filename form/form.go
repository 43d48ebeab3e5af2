package form

import (
	"go.uber.org/zap"
)

// Form is the root group of a tree. It holds the submission state and the
// object the form is mapped to.
type Form struct {
	*Group

	submitted     bool
	submittedData any
	logger        *zap.SugaredLogger
}

// NewForm creates a root form bound to mapped. An anonymous form reads the
// whole submitted payload, a named one reads the entry of its name.
func NewForm(name string, mapped any, opts ...Option) *Form {
	f := &Form{
		Group:  NewGroup(name, opts...),
		logger: zap.NewNop().Sugar(),
	}

	f.self = f
	f.mapped = mapped

	return f
}

func (f *Form) Type() string { return "form" }

func (f *Form) SetLogger(logger *zap.SugaredLogger) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	f.logger = logger
}

func (f *Form) Logger() *zap.SugaredLogger { return f.logger }

// Submit reads the form data out of payload. It returns false, leaving the
// form untouched, when a named form finds no entry of its name.
func (f *Form) Submit(payload map[string]any) (bool, error) {
	var data any = payload

	if f.Name() != "" {
		v, ok := payload[f.Name()]
		if !ok {
			f.logger.Debugw("form not submitted", "form", f.Name())
			return false, nil
		}

		data = v
	}

	f.submitted = true
	f.submittedData = data

	f.logger.Debugw("form submitted", "form", f.Name())

	return true, f.Group.SubmitValue(data)
}

func (f *Form) IsSubmitted() bool { return f.submitted }

// SubmittedData returns the raw data the form was submitted with.
func (f *Form) SubmittedData() any { return f.submittedData }

// IsValid is false until the form is submitted.
func (f *Form) IsValid() bool {
	return f.submitted && f.Group.IsValid()
}

// Reset forgets the submission. Submitted values stay in the elements but
// are no longer read.
func (f *Form) Reset() {
	f.submitted = false
	f.submittedData = nil
}

func (f *Form) View() *View {
	v := f.Group.View()
	v.Extra["submitted"] = f.submitted

	return v
}
