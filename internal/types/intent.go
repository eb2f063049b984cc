package types

// Intent is the derived goal/audience/constraints summary of an idea.
// Produced once by the intent stage and read-only afterward.
type Intent struct {
	Goal        string   `json:"goal"`
	Target      string   `json:"target"`
	Constraints []string `json:"constraints"`
}

// AppMap is the derived set of functional modules composing the product.
// Produced once by the cartography stage; a valid map has at least one module.
type AppMap struct {
	Modules []AppModule `json:"modules"`
}

// AppModule is one functional module of the product under design.
type AppModule struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}
