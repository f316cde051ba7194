// Package models defines the core domain models for investcalc.
//
// # Investment models
//
//   - InvestmentInput: a submitted plan (starting capital, yearly contribution,
//     expected return, duration)
//   - YearRecord: one year of a projection
//   - Summary: the headline numbers of a projection (final year)
//
// # Task models
//
//   - Task: one entry in a user's task list
//   - NewTaskData: the fields a user enters when creating a task
//
// # Design Principles
//
// 1. **Values, not references**: inputs and records are passed by value and never mutated after creation
// 2. **Plain numbers**: amounts are float64; rounding happens only at display time
// 3. **Avoid circular references**: tasks reference users by ID string
package models
