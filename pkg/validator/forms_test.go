package validator_test

import "github.com/dmitrymomot/deepvalid/pkg/validator"

func ptr[T any](v T) *T { return &v }

type GuestForm struct {
	validator.Constrained
	FirstName *string `validate:"notnull,notblank,size=1:100"`
	LastName  *string `validate:"notnull,notblank,size=1:100"`
	Age       int     `validate:"inrange=10:80"`
	Email     *string `validate:"notempty,notnull"`
}

type BookingForm struct {
	validator.Constrained
	Guests       []*GuestForm `validate:"notnull,size=1:5,dive,notnull"`
	Amenities    []string     `validate:"notnull,dive,anyof=TV Kitchen Toilet room"`
	PropertyType *string      `validate:"notnull,anyof=House Hostel"`
	RoomNumber   int          `validate:"positive"`
	PeopleInRoom map[int]int  `validate:"dive,keys,positive,endkeys,inrange=1:3"`
}

func guest(first *string, last string, age int, email string) *GuestForm {
	return &GuestForm{FirstName: first, LastName: ptr(last), Age: age, Email: ptr(email)}
}

func exampleBooking() *BookingForm {
	return &BookingForm{
		Guests: []*GuestForm{
			guest(nil, "Def", 21, "my@gmail.com"),
			guest(ptr(""), "Kalmykov", 11, "er@edu.hse.ru"),
			guest(ptr("Dima"), "Kalmykov", 8, "dadaya@edu.hse.ru"),
			guest(ptr("Polina"), "Renova", 88, "furmanov@edu.hse.ru"),
			guest(ptr("Anna"), "   ", 60, "perut@edu.hse.ru"),
		},
		Amenities:    []string{"TV", "Piano", "Kola", "room"},
		PropertyType: ptr("House"),
		RoomNumber:   3,
		PeopleInRoom: map[int]int{2: 0, 1: 2},
	}
}

type PositiveForm struct {
	validator.Constrained
	Long      int64            `validate:"positive"`
	Short     int16            `validate:"positive"`
	List      []int            `validate:"dive,positive"`
	Inner     [][][]int32      `validate:"dive,dive,dive,positive"`
	Set       map[int]struct{} `validate:"dive,positive"`
	MapValues map[string]int8  `validate:"dive,positive"`
	MapKeys   map[int]string   `validate:"dive,keys,positive,endkeys"`
}

type NegativeForm struct {
	validator.Constrained
	Short int16            `validate:"negative"`
	List  []int            `validate:"dive,negative"`
	Set   map[int]struct{} `validate:"dive,negative"`
}

type InRangeForm struct {
	validator.Constrained
	Long       int            `validate:"inrange=0:3"`
	Collection [3]uint8       `validate:"dive,inrange=2:3"`
	Nullable   *int32         `validate:"inrange=1:2"`
	MapKeys    map[int]string `validate:"dive,keys,inrange=10:30,endkeys"`
}

type NotBlankForm struct {
	validator.Constrained
	Empty string              `validate:"notblank"`
	List  []string            `validate:"dive,notblank"`
	Map   map[string]string   `validate:"dive,keys,notblank,endkeys"`
	Set   map[string]struct{} `validate:"dive,notblank"`
}

type NotEmptyForm struct {
	validator.Constrained
	Empty string              `validate:"notempty"`
	Space string              `validate:"notempty"`
	List  []int               `validate:"notempty"`
	Set   map[string]struct{} `validate:"notempty"`
	Map   map[string]int      `validate:"notempty"`
}

type SizeForm struct {
	validator.Constrained
	Name  string         `validate:"size=2:4"`
	Runes string         `validate:"size=2:2"`
	List  []string       `validate:"size=1:2,dive,size=1:1"`
	Map   map[string]int `validate:"size=2:3"`
}

type AnyOfForm struct {
	validator.Constrained
	Value  string     `validate:"anyof=hello"`
	Spaced string     `validate:"anyof='Mini bar' Wifi"`
	Inner  [][]string `validate:"dive,dive,anyof=12 21"`
}

type NotNullForm struct {
	validator.Constrained
	Pointer *int               `validate:"notnull"`
	List    []string           `validate:"notnull"`
	Map     map[string]*string `validate:"notnull,dive,notnull"`
	Iface   any                `validate:"notnull"`
	Guests  []*GuestForm       `validate:"dive,notnull"`
}

type UnconstrainedForm struct {
	Value int `validate:"positive"`
}

type MainForm struct {
	validator.Constrained
	Positive      PositiveForm
	Unconstrained UnconstrainedForm
	Negative      *NegativeForm
	InRange       [][]InRangeForm
	NotBlank      map[NotBlankKey]struct{}
	NotEmpty      map[int]NotEmptyForm
	Size          SizeForm
	AnyOf         any
	NotNull       NotNullForm
}

// NotBlankKey is a comparable constrained type usable as a set element.
type NotBlankKey struct {
	validator.Constrained
	Name string `validate:"notblank"`
}
