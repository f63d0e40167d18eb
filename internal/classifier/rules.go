package classifier

// RuleProfile describes one document type's keyword criteria. At least one
// required keyword must appear or the type scores zero; strong matches set
// the confidence tier; weak matches add a bounded boost.
type RuleProfile struct {
	Required []string
	Strong   []string
	Weak     []string
}

// ruleEntry ties a document type to its profile. Declaration order doubles
// as the tie-break order, so this is a slice rather than a map.
type ruleEntry struct {
	docType string
	profile RuleProfile
}

// defaultRules is the built-in rule table. Keywords are matched as
// lowercase substrings.
var defaultRules = []ruleEntry{
	{"Invoice", RuleProfile{
		Required: []string{"invoice"},
		Strong:   []string{"invoice", "amount", "total", "due", "bill"},
		Weak:     []string{"payment", "price", "cost", "charge"},
	}},
	{"Contract", RuleProfile{
		Required: []string{"agreement", "contract"},
		Strong:   []string{"agreement", "contract", "terms", "conditions", "party"},
		Weak:     []string{"signed", "effective", "date"},
	}},
	{"ID", RuleProfile{
		Required: []string{"passport", "license", "identification"},
		Strong:   []string{"passport", "driver", "license", "identification", "id number"},
		Weak:     []string{"issued", "expires", "birth"},
	}},
	{"BankStatement", RuleProfile{
		Required: []string{"statement"},
		Strong:   []string{"statement", "bank", "account", "balance", "transaction"},
		Weak:     []string{"deposit", "withdrawal", "credit", "debit"},
	}},
	{"Receipt", RuleProfile{
		Required: []string{"receipt"},
		Strong:   []string{"receipt", "purchased", "paid", "transaction"},
		Weak:     []string{"store", "shop", "cashier"},
	}},
	{"Resume", RuleProfile{
		Required: []string{"resume", "curriculum vitae", "cv"},
		Strong:   []string{"education", "experience", "skills", "employment"},
		Weak:     []string{"university", "degree", "job"},
	}},
	{"Report", RuleProfile{
		Required: []string{"report"},
		Strong:   []string{"report", "analysis", "findings", "summary", "conclusion"},
		Weak:     []string{"data", "results", "study"},
	}},
}
