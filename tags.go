package creole

// HTML element names used in the output.
const (
	tagBold           = "strong"
	tagItalics        = "em"
	tagSuperscript    = "sup"
	tagSubscript      = "sub"
	tagUnderline      = "u"
	tagCode           = "code"
	tagBreak          = "br"
	tagLink           = "a"
	tagImage          = "img"
	tagParagraph      = "p"
	tagOrderedList    = "ol"
	tagUnorderedList  = "ul"
	tagListItem       = "li"
	tagDefinitionList = "dl"
	tagTerm           = "dt"
	tagDescription    = "dd"
	tagTable          = "table"
	tagTableRow       = "tr"
	tagTableHeader    = "th"
	tagTableData      = "td"
	tagPreformatted   = "pre"
	tagHorizontalRule = "hr"
)

// headingTags indexes heading elements by level-1.
var headingTags = [6]string{"h1", "h2", "h3", "h4", "h5", "h6"}

// contentTags hold text directly. They get a newline before open and after
// close, but never adjacent to their own text.
var contentTags = map[string]bool{
	tagParagraph:   true,
	tagListItem:    true,
	tagTerm:        true,
	tagDescription: true,
	tagTableHeader: true,
	tagTableData:   true,
	"h1":           true,
	"h2":           true,
	"h3":           true,
	"h4":           true,
	"h5":           true,
	"h6":           true,
}

// inlineTags never force newlines around themselves.
var inlineTags = map[string]bool{
	tagBold:        true,
	tagItalics:     true,
	tagSuperscript: true,
	tagSubscript:   true,
	tagUnderline:   true,
	tagCode:        true,
	tagBreak:       true,
	tagLink:        true,
	tagImage:       true,
}

// voidTags render with a self-closing suffix in XHTML output.
var voidTags = map[string]bool{
	tagBreak:          true,
	tagImage:          true,
	tagHorizontalRule: true,
}

// inlineMarkup maps two-character emphasis markers to their elements.
var inlineMarkup = map[string]string{
	"**": tagBold,
	"//": tagItalics,
	"^^": tagSuperscript,
	",,": tagSubscript,
	"__": tagUnderline,
}

// attr is one rendered HTML attribute. Handlers only pass attributes that
// are actually present; absence is expressed by not passing them.
type attr struct {
	name  string
	value string
}
