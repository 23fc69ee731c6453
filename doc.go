// Package huffman implements Huffman coding over arbitrary symbol sequences.
//
// The pipeline is: count symbol frequencies, build a Huffman tree from the
// weights, derive a prefix-free code table from the tree, and pack each
// symbol's code into a bit Stream.  Decoding walks the tree (or a Decoder
// built from the table) one bit at a time.
//
// Trees are input-dependent, so the tree must travel with the stream.  See
// MarshalTree, Stream.MarshalBinary and Pack for the persisted forms.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
