// Copyright 2026 The addrwords Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.
// SPDX-License-Identifier: MIT

package ipv6

import "github.com/addrwords/addrwords/internal/xerrors"

var errMalformedPayload = xerrors.ErrMalformedPayload
