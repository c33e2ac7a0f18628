// Package errors provides coded errors for the stats service.
//
// Errors carry a Code, a message, an optional cause and metadata. Wrapping a
// coded error keeps its code, so a NotFound from the character store is still
// a NotFound when it leaves the gRPC handler.
//
// # Usage
//
//	err := errors.NotFound("character not found").WithMeta("character_id", id)
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load character")
//	}
//
//	if errors.IsNotFound(err) {
//	    // absent record
//	}
//
// # Validation
//
// Config structs validate with the builder, which returns nil or a single
// InvalidArgument error listing every failing field:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.RefData == nil {
//	    vb.RequiredField("RefData")
//	}
//	return vb.Build()
//
// # gRPC
//
// Handlers return errors.ToGRPCError(err); clients map status errors back with
// errors.FromGRPCError.
//
// # Layers
//
// Repositories return NotFound and AlreadyExists. Orchestrators validate input
// with InvalidArgument and wrap lower errors with context. The engine returns
// reference fetch failures unchanged. Handlers convert to gRPC status.
package errors
