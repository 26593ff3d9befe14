package validation

// IDParam is the path parameter naming a product.
const IDParam = "id"

// ProductIDRules validates the id of every id-keyed route.
func ProductIDRules() []Rule {
	return []Rule{
		ParamInt(IDParam, MsgInvalidID),
	}
}

func priceRules() []Rule {
	return []Rule{
		Numeric("price", MsgNotNumeric),
		NotEmpty("price", MsgEmptyPrice),
		Positive("price", MsgInvalidPrice),
	}
}

// CreateProductRules validates a create body. Availability is not an input.
func CreateProductRules() []Rule {
	rules := []Rule{NotEmpty("name", MsgEmptyName)}
	return append(rules, priceRules()...)
}

// UpdateProductRules validates a full replace: id, name, price and
// availability are all required.
func UpdateProductRules() []Rule {
	rules := append(ProductIDRules(), NotEmpty("name", MsgEmptyName))
	rules = append(rules, priceRules()...)
	return append(rules, Boolean("availability", MsgInvalidAvailability))
}
