package binding_test

import (
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"form-binder/binding"
	"form-binder/form"
)

func personForm(p *Person) *form.Form {
	f := form.NewForm("person", p)
	f.Add(
		form.NewText("last_name", form.Required()),
		form.NewText("first_name"),
		form.NewNumber("age"),
		form.NewText("confirm", form.Unmapped()),
		form.NewCollection("addresses", form.NewGroup("").Add(
			form.NewText("address"),
			form.NewText("city"),
		)),
	)

	return f
}

func TestBinder_Seed(t *testing.T) {
	p := &Person{
		LastName:  "Giron",
		FirstName: "Ronan",
		Age:       30,
		Addresses: []Address{{Address: "1 rue de Rivoli", City: "Paris"}, {Address: "2 quai", City: "Lyon"}},
	}
	f := personForm(p)

	require.NoError(t, binding.New().Seed(f))

	want := map[string]any{
		"last_name":  "Giron",
		"first_name": "Ronan",
		"age":        "30",
		"confirm":    nil,
		"addresses": map[string]any{
			"0": map[string]any{"address": "1 rue de Rivoli", "city": "Paris"},
			"1": map[string]any{"address": "2 quai", "city": "Lyon"},
		},
	}

	got := f.Value()
	assert.Empty(t, cmp.Diff(want, got), spew.Sdump(got))
}

func TestBinder_BindRoundTrip(t *testing.T) {
	p := &Person{
		LastName:  "Giron",
		FirstName: "Ronan",
		Age:       30,
		Addresses: []Address{{Address: "1 rue de Rivoli", City: "Paris"}, {Address: "2 quai", City: "Lyon"}},
	}
	f := personForm(p)
	b := binding.New()
	require.NoError(t, b.Seed(f))

	ok, err := b.Bind(f, map[string]any{"person": map[string]any{
		"last_name":  "Doe",
		"first_name": "John",
		"age":        "42",
		"confirm":    "yes",
		"addresses": map[string]any{
			"1": map[string]any{"address": "3 place Bellecour", "city": "Lyon"},
		},
	}})
	require.NoError(t, err)
	require.True(t, ok)

	want := &Person{
		LastName:  "Doe",
		FirstName: "John",
		Age:       42,
		Addresses: []Address{{Address: "3 place Bellecour", City: "Lyon"}},
	}
	assert.Empty(t, cmp.Diff(want, p), spew.Sdump(p))
}

func TestBinder_SeedThenHydrateIsFixedPoint(t *testing.T) {
	newPerson := func() *Person {
		return &Person{
			LastName:  "Giron",
			FirstName: "Ronan",
			Age:       30,
			Addresses: []Address{{Address: "1 rue de Rivoli", City: "Paris"}, {Address: "2 quai", City: "Lyon"}},
		}
	}

	p := newPerson()
	f := personForm(p)
	b := binding.New()

	require.NoError(t, b.Seed(f))
	require.False(t, f.IsSubmitted())
	require.NoError(t, b.Hydrator().Hydrate(f))

	assert.Empty(t, cmp.Diff(newPerson(), p), spew.Sdump(p))
}

type Residence struct {
	Address string
	ZipCode string
}

type Member struct {
	LastName  string
	Birthday  time.Time
	Addresses []*Residence
}

func TestBinder_BindFreshObject(t *testing.T) {
	registry := binding.NewRegistry()
	binding.RegisterType[Residence](registry, "address")

	m := &Member{}
	f := form.NewForm("person", m)
	f.Add(
		form.NewText("last_name", form.Required()),
		form.NewDate("birthday"),
		form.NewCollection("addresses", form.NewGroup("", form.DataType("address")).Add(
			form.NewText("address"),
			form.NewText("zip_code"),
		)),
	)

	ok, err := binding.New(binding.WithRegistry(registry)).Bind(f, map[string]any{"person": map[string]any{
		"last_name": "Giron",
		"birthday":  "1980-01-01",
		"addresses": map[string]any{
			"0": map[string]any{"address": "2 avenue Paris", "zip_code": "75001"},
		},
	}})
	require.NoError(t, err)
	require.True(t, ok)

	want := &Member{
		LastName:  "Giron",
		Birthday:  time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC),
		Addresses: []*Residence{{Address: "2 avenue Paris", ZipCode: "75001"}},
	}
	assert.Empty(t, cmp.Diff(want, m), spew.Sdump(m))
}

func TestBinder_InvalidFormLeavesObject(t *testing.T) {
	p := &Person{LastName: "Giron"}
	f := personForm(p)

	ok, err := binding.New().Bind(f, map[string]any{"person": map[string]any{"last_name": ""}})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "Giron", p.LastName)
}

func TestBinder_NotSubmitted(t *testing.T) {
	p := &Person{LastName: "Giron"}

	ok, err := binding.New().Bind(personForm(p), map[string]any{"other": map[string]any{}})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBinder_DisabledIsNotWritten(t *testing.T) {
	p := &Person{LastName: "Giron"}
	f := form.NewForm("", p)
	f.Add(form.NewText("last_name", form.Disabled()), form.NewText("first_name"))

	ok, err := binding.New().Bind(f, map[string]any{"last_name": "Doe", "first_name": "John"})
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "Giron", p.LastName)
	assert.Equal(t, "John", p.FirstName)
}

type Profile struct {
	Bio string
}

type Account struct {
	Email     string
	Profile   *Profile
	Home      Address
	Meta      map[string]any
	Nicknames []string
	Scores    map[string]int
	Extra     any
}

func TestHydrator_CreatesMissingObjects(t *testing.T) {
	registry := binding.NewRegistry()
	binding.RegisterType[Profile](registry, "profile")

	scores := map[string]int{"a": 1, "b": 2}
	acc := &Account{Home: Address{City: "Paris"}, Scores: scores}

	f := form.NewForm("", acc)
	f.Add(
		form.NewEmail("email"),
		form.NewGroup("profile").Add(form.NewText("bio")),
		form.NewGroup("home").Add(form.NewText("city")),
		form.NewGroup("meta").Add(form.NewText("k")),
		form.NewCollection("nicknames", form.NewText("")),
		form.NewCollection("scores", form.NewNumber("")),
		form.NewGroup("extra", form.DataType("profile")).Add(form.NewText("bio")),
	)

	ok, err := binding.New(binding.WithRegistry(registry)).Bind(f, map[string]any{
		"email":     "ronan@example.com",
		"profile":   map[string]any{"bio": "hi"},
		"home":      map[string]any{"city": "Lyon"},
		"meta":      map[string]any{"k": "v"},
		"nicknames": []any{"x", "y"},
		"scores":    map[string]any{"b": "5", "c": "7"},
		"extra":     map[string]any{"bio": "other"},
	})
	require.NoError(t, err)
	require.True(t, ok)

	want := &Account{
		Email:     "ronan@example.com",
		Profile:   &Profile{Bio: "hi"},
		Home:      Address{City: "Lyon"},
		Meta:      map[string]any{"k": "v"},
		Nicknames: []string{"x", "y"},
		Scores:    map[string]int{"b": 5, "c": 7},
		Extra:     &Profile{Bio: "other"},
	}
	assert.Empty(t, cmp.Diff(want, acc), spew.Sdump(acc))
	assert.Equal(t, map[string]int{"b": 5, "c": 7}, scores, "maps are edited in place")
}

func TestHydrator_UnknownDataType(t *testing.T) {
	f := form.NewForm("", &Account{})
	f.Add(form.NewGroup("extra", form.DataType("nope")).Add(form.NewText("bio")))

	_, err := binding.New().Bind(f, map[string]any{"extra": map[string]any{"bio": "x"}})
	require.ErrorIs(t, err, binding.ErrUnknownType)
}

func TestCollector_Errors(t *testing.T) {
	t.Run("missing property", func(t *testing.T) {
		f := form.NewForm("person", &Person{})
		f.Add(form.NewText("frist_name"))

		err := binding.New().Seed(f)
		require.ErrorIs(t, err, binding.ErrNoGetter)

		var bindErr *binding.Error
		require.ErrorAs(t, err, &bindErr)
		assert.Equal(t, "person[frist_name]", bindErr.Element)
		require.NotEmpty(t, bindErr.Suggestions)
		assert.Equal(t, "FirstName", bindErr.Suggestions[0])
		assert.Contains(t, err.Error(), "did you mean FirstName")
	})

	t.Run("not iterable", func(t *testing.T) {
		f := form.NewForm("", &Person{LastName: "Giron"})
		f.Add(form.NewCollection("last_name", form.NewText("")))

		require.ErrorIs(t, binding.New().Seed(f), binding.ErrNotIterable)
	})

	t.Run("nil collections are empty", func(t *testing.T) {
		got, err := binding.New().Collector().Collect(
			form.NewCollection("addresses", form.NewText("")), &Person{},
		)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{}, got)
	})
}
