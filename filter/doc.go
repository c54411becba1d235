// Package filter classifies checked URLs as extern or intern links.
//
// Extern entries are kept in configuration order and the first matching entry
// decides the strictness of an extern link. A single intern entry describes
// the site being checked. How strictness combines with the global
// externstrictall and denyallow options is decided by the checking engine;
// this package only reports what matched.
package filter
