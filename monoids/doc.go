/*
Package monoids provides some pre-manufactured monoids for segment trees.

All monoids in this package are stateless or carry their identity as a field,
and may be shared between trees.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package monoids
