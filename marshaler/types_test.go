package marshaler

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type color int

const (
	red color = iota
	green
	blue
)

func (c color) String() string {
	return [...]string{"red", "green", "blue"}[c]
}

func (color) EnumValues() []Enum {
	return []Enum{red, green, blue}
}

// priority members are not numbered by position.
type priority int

const (
	low  priority = 10
	high priority = 20
)

func (p priority) String() string {
	if p == low {
		return "low"
	}
	return "high"
}

func (priority) EnumValues() []Enum {
	return []Enum{low, high}
}

type record struct {
	ID    uuid.UUID `dynamo:"id"`
	Score int32     `dynamo:"score"`
	Tags  []string  `dynamo:"tags"`
}

type address struct {
	Street string
	Zip    int `dynamo:"zip_code"`
}

type customer struct {
	Name     string
	Home     address
	Work     *address
	Notes    map[string]string
	Password string `dynamo:"-"`
	Cache    []int  `dynamo:"cache,ignore"`
	Grade    rune   `dynamo:"grade,char"`
	Level    priority
	Rank     priority `dynamo:",ordinal"`
	Joined   time.Time
	Balance  decimal.Decimal
	Nickname *string
}

type node struct {
	Name string
	Next *node
}

type tree struct {
	Children []tree
	Label    string
}

type userID string

type chainNode struct {
	Name string
	Meta *chainMeta
	Kids []*chainNode
}

type chainMeta struct {
	Note string
}

type selfPtr *selfPtr
