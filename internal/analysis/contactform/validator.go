package contactform

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mgdigi/portfolio/backend/internal/i18n"
)

// Field names as exposed to the frontend.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// Message keys resolved through the i18n catalog.
const (
	KeyNameRequired    = "form.nameRequired"
	KeyEmailRequired   = "form.emailRequired"
	KeyEmailInvalid    = "form.emailInvalid"
	KeySubjectRequired = "form.subjectRequired"
	KeyMessageRequired = "form.messageRequired"
)

// Form 联系表单的四个必填字段。
type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Errors maps a field name to its error text. A missing key means the field is valid.
type Errors map[string]string

// Valid 表示没有任何字段错误。
func (e Errors) Valid() bool {
	return len(e) == 0
}

// nonSpace matches one character outside the Unicode White_Space set plus
// U+FEFF. RE2's \S only excludes ASCII whitespace.
const nonSpace = `[^\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]`

// emailPattern is a structural check only; it is searched, not anchored.
var emailPattern = regexp.MustCompile(nonSpace + `+@` + nonSpace + `+\.` + nonSpace + `+`)

// Validate 对四个字段分别校验，返回全新的错误映射。tr 为 nil 时使用英文文案。
func Validate(form Form, tr i18n.Translator) Errors {
	if tr == nil {
		tr = i18n.For(i18n.English)
	}

	errs := make(Errors)
	if isBlank(form.Name) {
		errs[FieldName] = tr.T(KeyNameRequired)
	}
	if isBlank(form.Email) {
		errs[FieldEmail] = tr.T(KeyEmailRequired)
	} else if !emailPattern.MatchString(form.Email) {
		errs[FieldEmail] = tr.T(KeyEmailInvalid)
	}
	if isBlank(form.Subject) {
		errs[FieldSubject] = tr.T(KeySubjectRequired)
	}
	if isBlank(form.Message) {
		errs[FieldMessage] = tr.T(KeyMessageRequired)
	}
	return errs
}

func isBlank(value string) bool {
	return strings.TrimFunc(value, isSpace) == ""
}

// isSpace follows the trim set of browsers: U+FEFF counts, U+0085 does not.
func isSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return r == '\ufeff' || unicode.IsSpace(r)
}
