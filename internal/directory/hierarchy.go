package directory

// Context tracks the current position in the organizational tree while a
// corpus is parsed: Service → portfolio executive (PAE) → program executive
// (CPE/PEO) → program office (PM). A header line establishes context for
// every following body line until a header at the same or a higher level
// supersedes it; there is no explicit exit transition.
//
// The corpus parser owns the Context exclusively. It lives for one corpus
// parse and is never reset mid-page except by header lines.
type Context struct {
	Service string // current service/agency label
	PAE     string // current portfolio acquisition executive
	CPE     string // current capability program executive or PEO
	Office  string // current program office
}

// EnterService starts a new service section, clearing all descendant levels.
func (c *Context) EnterService(name string) {
	c.Service = name
	c.PAE = ""
	c.CPE = ""
	c.Office = ""
}

// EnterPAE starts a new portfolio-executive section under the current
// service, clearing the program-executive and program-office levels.
func (c *Context) EnterPAE(name string) {
	c.PAE = name
	c.CPE = ""
	c.Office = ""
}

// EnterCPE starts a new program-executive section, clearing the
// program-office level. Ancestor levels are untouched.
func (c *Context) EnterCPE(name string) {
	c.CPE = name
	c.Office = ""
}

// EnterOffice starts a new program-office section. Ancestors are untouched.
func (c *Context) EnterOffice(name string) {
	c.Office = name
}
