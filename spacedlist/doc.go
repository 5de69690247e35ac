/*
Copyright 2014 Workiva, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

 http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

/*
Package spacedlist implements an ordered, hierarchical, sparse index keyed
by a one-dimensional numeric coordinate. Unlike slice/skip, a spaced list
stores no values at all, only positions. Its nodes are identified solely by
an integer index, materialized implicitly: node k exists iff the list's
size exceeds k.

The list is a packed array of "link lengths" (a binary decomposition of
skip distances, one degree interleaved per power of two), rather than a
pointer tree or probabilistic skip-list tower. Node 0 (the "anchor") always
sits at position zero. Between any two adjacent nodes, a "sublist" may
recursively subdivide that gap to arbitrary fineness, with its own local
coordinate frame aligned to zero at the gap's left node.

Performance characteristics:
Append:          O(log n) amortised
Insert:          O(log n)
Shallow queries: O(log n)
Deep queries:    O(log n) per level, O(depth) levels

Example usage with generics:

	type MyInt int

	func (m MyInt) Add(o MyInt) MyInt { return m + o }
	func (m MyInt) Sub(o MyInt) MyInt { return m - o }
	func (m MyInt) Compare(o MyInt) int { return int(m - o) }

	sl := spacedlist.New[MyInt]()
	sl.AppendNode(5)
	sl.AppendNode(3)
	result, ok := sl.AtOrBefore(6)

This is a mutable, single-threaded structure; it is not safe for concurrent
mutation, though concurrent reads with no writer are safe by construction.
*/
package spacedlist
