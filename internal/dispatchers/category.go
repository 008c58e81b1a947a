package dispatchers

type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryGeneral                       // ping, help, whoami
	CategoryUtility                       // echo, sum, wait
	CategoryFun                           // roll, pick
	CategoryEconomy                       // give
	CategoryAdmin                         // permission-gated maintenance
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryGeneral:
		return "general"
	case CategoryUtility:
		return "utility"
	case CategoryFun:
		return "fun"
	case CategoryEconomy:
		return "economy"
	case CategoryAdmin:
		return "administration"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategoryGeneral,
	CategoryUtility,
	CategoryFun,
	CategoryEconomy,
	CategoryAdmin,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
