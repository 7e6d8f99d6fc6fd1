package categorizer

// Strategy is one layer of the classifier. Layers run in a fixed order and
// the first layer that reports a match decides the category.
type Strategy interface {
	// Categorize inspects an already normalized, lower-cased product name.
	Categorize(lowerName string) (category string, ok bool)

	// Name identifies the strategy in logs.
	Name() string
}
