package grammar

// specNode mirrors one node of a YAML format spec. One flat struct covers
// every node type; Build picks the fields that apply to the declared type.
type specNode struct {
	Name string `yaml:"name"`
	Doc  string `yaml:"doc"`
	Type string `yaml:"type"`

	// struct
	Fields []specNode `yaml:"fields"`

	// array / greedy
	Count   int    `yaml:"count"`
	CountOf string `yaml:"count_of"`

	// int / float
	Size   int    `yaml:"size"`
	Signed bool   `yaml:"signed"`
	Endian string `yaml:"endian"` // big (default), little, native

	// bits
	Bits int `yaml:"bits"`

	// bytes
	Length   int    `yaml:"length"`
	LengthOf string `yaml:"length_of"`

	// enum / flags
	Symbols []specSymbol `yaml:"symbols"`
	Set     []specFlag   `yaml:"set"`

	// if
	Cond *specCond `yaml:"cond"`
	Then *specNode `yaml:"then"`
	Else *specNode `yaml:"else"`

	// switch
	KeyOf       string     `yaml:"key_of"`
	Cases       []specCase `yaml:"cases"`
	DefaultCase *specNode  `yaml:"default"`

	// array element, enum/flags/timestamp integer base
	Of *specNode `yaml:"of"`

	// computed
	Field string `yaml:"field"`

	// const
	Value any `yaml:"value"`
}

// specSymbol is one enum symbol declaration.
type specSymbol struct {
	Value int64  `yaml:"value"`
	Name  string `yaml:"name"`
}

// specFlag is one named bit declaration.
type specFlag struct {
	Name  string `yaml:"name"`
	Value int64  `yaml:"value"`
}

// specCond is a `field == literal` condition.
type specCond struct {
	Field  string `yaml:"field"`
	Equals any    `yaml:"equals"`
}

// specCase is one switch case declaration.
type specCase struct {
	Key any      `yaml:"key"`
	Of  specNode `yaml:"of"`
}
