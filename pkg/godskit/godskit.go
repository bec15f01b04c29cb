// Package godskit adapts containers of github.com/emirpasic/gods
// to the container shapes of containerkit.
//
// The gods containers store untyped (interface{}) values,
// so the adapters box every element behind a *T:
// the box keeps the element typed, gives it a stable identity reference,
// and lets tree comparators compare elements by value.
package godskit
