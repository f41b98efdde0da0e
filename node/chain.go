package node

// Chain stacks the filters on top of the source in the given order:
// frames from source go through filters[0] first.
func Chain(source Source, filters ...Filter) Source {
	for _, filter := range filters {
		source = NewForwardFilter(source, filter)
	}
	return source
}
