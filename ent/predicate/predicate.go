// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Achievement is the predicate function for achievement builders.
type Achievement func(*sql.Selector)

// ProgressRecord is the predicate function for progressrecord builders.
type ProgressRecord func(*sql.Selector)

// QuizResult is the predicate function for quizresult builders.
type QuizResult func(*sql.Selector)

// Submission is the predicate function for submission builders.
type Submission func(*sql.Selector)
